package validate

import "regexp"

// The back office serves a bilingual staff, so the name patterns admit
// the Ukrainian alphabet alongside ASCII. The original forms expressed
// "not whitespace-only" with a lookahead; RE2 has none, so that half of
// the constraint lives in the Required rule instead.
var (
	// ResourceName admits letters, digits, apostrophes, hyphens, and spaces.
	ResourceName = regexp.MustCompile(`^[A-Za-zА-Яа-яЁёІіЇїЄєҐґ0-9'’\-\s]+$`)

	// PersonName is ResourceName without digits.
	PersonName = regexp.MustCompile(`^[A-Za-zА-Яа-яЁёІіЇїЄєҐґ'’\-\s]+$`)

	// Amount is a non-negative integer or decimal with a digit before
	// and after any decimal point.
	Amount = regexp.MustCompile(`^\d+(\.\d+)?$`)

	// FreeText requires at least one non-whitespace character anywhere.
	FreeText = regexp.MustCompile(`\S`)
)
