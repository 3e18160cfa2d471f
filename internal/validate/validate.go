// Package validate evaluates declarative field rules for the resource
// forms. Evaluation is pure: a field value plus a rule list yields a
// verdict and nothing else.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind identifies which rule a value violated.
type Kind string

const (
	// KindRequired rejects empty and whitespace-only values.
	KindRequired Kind = "required"
	// KindMaxLength rejects values longer than N characters.
	KindMaxLength Kind = "maxLength"
	// KindMinLength rejects values shorter than N characters.
	KindMinLength Kind = "minLength"
	// KindPattern rejects values not matching a resource-specific pattern.
	KindPattern Kind = "pattern"
	// KindMin rejects numeric values below a lower bound.
	KindMin Kind = "min"
	// KindEmail rejects values that are not a plausible email address.
	KindEmail Kind = "email"
)

// Rule is one declarative constraint on a field value.
type Rule struct {
	re      *regexp.Regexp
	message string
	kind    Kind
	n       int
	min     float64
}

// Kind returns which constraint the rule expresses.
func (r Rule) Kind() Kind { return r.kind }

// Required rejects empty and whitespace-only values.
func Required() Rule {
	return Rule{kind: KindRequired, message: "is required"}
}

// MaxLength rejects values longer than n characters.
func MaxLength(n int) Rule {
	return Rule{kind: KindMaxLength, n: n, message: fmt.Sprintf("must be at most %d characters", n)}
}

// MinLength rejects non-empty values shorter than n characters.
func MinLength(n int) Rule {
	return Rule{kind: KindMinLength, n: n, message: fmt.Sprintf("must be at least %d characters", n)}
}

// Pattern rejects non-empty values that do not match re.
func Pattern(re *regexp.Regexp, message string) Rule {
	return Rule{kind: KindPattern, re: re, message: message}
}

// Min rejects numeric values below the bound. Values that do not parse
// as numbers are left to a Pattern rule on the same field.
func Min(bound float64) Rule {
	return Rule{kind: KindMin, min: bound, message: fmt.Sprintf("must be at least %v", bound)}
}

// Email rejects values that are not a plausible email address.
func Email() Rule {
	return Rule{kind: KindEmail, message: "must be a valid email address"}
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]{2,}$`)

// Violation reports the first rule a field value failed.
type Violation struct {
	Rule    Kind
	Message string
}

// Field checks a value against its rules in order and returns the first
// violation, or nil when every rule passes. Rules other than required
// skip empty values, matching the reactive-forms semantics the forms
// were written against.
func Field(value string, rules []Rule) *Violation {
	for _, r := range rules {
		if v := check(value, r); v != nil {
			return v
		}
	}
	return nil
}

func check(value string, r Rule) *Violation {
	if r.kind == KindRequired {
		if strings.TrimSpace(value) == "" {
			return &Violation{Rule: r.kind, Message: r.message}
		}
		return nil
	}
	if value == "" {
		return nil
	}

	switch r.kind {
	case KindMaxLength:
		if len([]rune(value)) > r.n {
			return &Violation{Rule: r.kind, Message: r.message}
		}
	case KindMinLength:
		if len([]rune(value)) < r.n {
			return &Violation{Rule: r.kind, Message: r.message}
		}
	case KindPattern:
		if !r.re.MatchString(value) {
			return &Violation{Rule: r.kind, Message: r.message}
		}
	case KindMin:
		if n, err := strconv.ParseFloat(value, 64); err == nil && n < r.min {
			return &Violation{Rule: r.kind, Message: r.message}
		}
	case KindEmail:
		if !emailPattern.MatchString(value) {
			return &Violation{Rule: r.kind, Message: r.message}
		}
	}
	return nil
}

// RuleSet maps field keys to their rule lists.
type RuleSet map[string][]Rule

// Errors maps field keys to the violation each one failed with.
type Errors map[string]Violation

// Fields validates every field in values against the rule set and
// collects the violations. An empty result means the form may be
// submitted.
func Fields(values map[string]string, rules RuleSet) Errors {
	errs := Errors{}
	for key, fieldRules := range rules {
		if v := Field(values[key], fieldRules); v != nil {
			errs[key] = *v
		}
	}
	return errs
}
