package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_Required(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		wantKind Kind
		wantOK   bool
	}{
		{name: "plain value passes", value: "Office budget", wantOK: true},
		{name: "empty value fails", value: "", wantKind: KindRequired},
		{name: "whitespace only fails", value: "   ", wantKind: KindRequired},
		{name: "tabs and newlines fail", value: "\t\n ", wantKind: KindRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Field(tt.value, []Rule{Required()})
			if tt.wantOK {
				assert.Nil(t, v)
				return
			}
			require.NotNil(t, v)
			assert.Equal(t, tt.wantKind, v.Rule)
		})
	}
}

func TestField_Lengths(t *testing.T) {
	rules := []Rule{Required(), MaxLength(120)}

	t.Run("exactly at the limit passes", func(t *testing.T) {
		assert.Nil(t, Field(strings.Repeat("a", 120), rules))
	})

	t.Run("one over the limit fails", func(t *testing.T) {
		v := Field(strings.Repeat("a", 121), rules)
		require.NotNil(t, v)
		assert.Equal(t, KindMaxLength, v.Rule)
	})

	t.Run("multibyte runes count as one", func(t *testing.T) {
		assert.Nil(t, Field(strings.Repeat("ї", 120), rules))
	})

	t.Run("min length skips empty values", func(t *testing.T) {
		assert.Nil(t, Field("", []Rule{MinLength(6)}))
	})

	t.Run("min length rejects short values", func(t *testing.T) {
		v := Field("abc", []Rule{MinLength(6)})
		require.NotNil(t, v)
		assert.Equal(t, KindMinLength, v.Rule)
	})
}

func TestField_Patterns(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		rule   Rule
		wantOK bool
	}{
		{name: "resource name with apostrophe", value: "Канцтовари 'Офіс'", rule: Pattern(ResourceName, "contains invalid characters"), wantOK: true},
		{name: "resource name with digits", value: "Budget 2024", rule: Pattern(ResourceName, "contains invalid characters"), wantOK: true},
		{name: "resource name rejects symbols", value: "Budget@2024", rule: Pattern(ResourceName, "contains invalid characters")},
		{name: "person name rejects digits", value: "Іван3", rule: Pattern(PersonName, "must not contain digits")},
		{name: "person name with hyphen", value: "Анна-Марія", rule: Pattern(PersonName, "must not contain digits"), wantOK: true},
		{name: "amount accepts decimals", value: "120.50", rule: Pattern(Amount, "must be a number"), wantOK: true},
		{name: "amount rejects currency sign", value: "$120", rule: Pattern(Amount, "must be a number")},
		{name: "amount rejects negative", value: "-5", rule: Pattern(Amount, "must be a number")},
		{name: "free text needs a visible character", value: "hello", rule: Pattern(FreeText, "must not be blank"), wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Field(tt.value, []Rule{tt.rule})
			if tt.wantOK {
				assert.Nil(t, v)
			} else {
				require.NotNil(t, v)
				assert.Equal(t, KindPattern, v.Rule)
			}
		})
	}
}

func TestField_Email(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		wantOK bool
	}{
		{name: "plain address", value: "olena@example.com", wantOK: true},
		{name: "missing at sign", value: "olena.example.com"},
		{name: "missing domain", value: "olena@"},
		{name: "one letter tld", value: "olena@example.c"},
		{name: "spaces rejected", value: "olena @example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Field(tt.value, []Rule{Email()})
			if tt.wantOK {
				assert.Nil(t, v)
			} else {
				require.NotNil(t, v)
				assert.Equal(t, KindEmail, v.Rule)
			}
		})
	}
}

func TestField_Min(t *testing.T) {
	rules := []Rule{Min(0)}

	assert.Nil(t, Field("0", rules))
	assert.Nil(t, Field("10.5", rules))

	v := Field("-1", rules)
	require.NotNil(t, v)
	assert.Equal(t, KindMin, v.Rule)

	// Unparseable values are the pattern rule's problem.
	assert.Nil(t, Field("abc", rules))
}

func TestField_FirstViolationWins(t *testing.T) {
	rules := []Rule{Required(), MaxLength(3), Pattern(Amount, "must be a number")}

	v := Field("12345", rules)
	require.NotNil(t, v)
	assert.Equal(t, KindMaxLength, v.Rule)
}

func TestFields(t *testing.T) {
	rules := RuleSet{
		"name":   {Required(), MaxLength(120)},
		"amount": {Required(), Min(0), Pattern(Amount, "must be a number")},
	}

	t.Run("valid form has no errors", func(t *testing.T) {
		errs := Fields(map[string]string{"name": "Stationery", "amount": "250"}, rules)
		assert.Empty(t, errs)
	})

	t.Run("every failing field is reported", func(t *testing.T) {
		errs := Fields(map[string]string{"name": "  ", "amount": "-2"}, rules)
		require.Len(t, errs, 2)
		assert.Equal(t, KindRequired, errs["name"].Rule)
		assert.Equal(t, KindMin, errs["amount"].Rule)
	})

	t.Run("missing key counts as empty", func(t *testing.T) {
		errs := Fields(map[string]string{"amount": "5"}, rules)
		require.Len(t, errs, 1)
		assert.Equal(t, KindRequired, errs["name"].Rule)
	})
}
