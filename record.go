package roster

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMissingField is returned by [RecordFromMap] when a required key is absent.
var ErrMissingField = errors.New("missing field")

// ErrInvalidField is returned by [RecordFromMap] when a value has an unsupported type.
var ErrInvalidField = errors.New("invalid field")

// Age is a person's age, kept as text.
//
// No validation is applied: interactive input is stored verbatim, and
// integers are converted to their decimal form with [AgeFromInt]. Use
// [Age.Int] to find out whether the text is a whole number.
type Age string

// AgeFromInt returns the Age for n in decimal form.
func AgeFromInt(n int) Age {
	return Age(strconv.Itoa(n))
}

// String returns the age text.
func (a Age) String() string {
	return string(a)
}

// Int returns the age as an int and true if the text is a decimal integer.
func (a Age) Int() (int, bool) {
	n, err := strconv.Atoi(string(a))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Record is one person in a roster.
//
// Record is immutable: its fields can only be set by [NewRecord] or
// [RecordFromMap]. Records are comparable with ==, and two records are equal
// exactly when all three fields are equal.
type Record struct {
	lastName  string
	firstName string
	age       Age
}

// NewRecord creates a [Record] from its fields. Any text is accepted.
func NewRecord(lastName, firstName string, age Age) Record {
	return Record{
		lastName:  lastName,
		firstName: firstName,
		age:       age,
	}
}

// RecordFromMap builds a [Record] from a mapping with the keys "last_name",
// "first_name" and "age".
//
// Names must be strings. The age may be a string or an int. Misspelt or
// missing keys are reported with [ErrMissingField] rather than guessed.
func RecordFromMap(m map[string]any) (Record, error) {
	lastName, err := stringField(m, "last_name")
	if err != nil {
		return Record{}, err
	}
	firstName, err := stringField(m, "first_name")
	if err != nil {
		return Record{}, err
	}

	raw, ok := m["age"]
	if !ok {
		return Record{}, fmt.Errorf("%w %q", ErrMissingField, "age")
	}
	var age Age
	switch v := raw.(type) {
	case int:
		age = AgeFromInt(v)
	case string:
		age = Age(v)
	default:
		return Record{}, fmt.Errorf("%w %q: unsupported type %T", ErrInvalidField, "age", raw)
	}

	return NewRecord(lastName, firstName, age), nil
}

// stringField reads a required string value from m.
func stringField(m map[string]any, key string) (string, error) {
	raw, ok := m[key]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrMissingField, key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w %q: unsupported type %T", ErrInvalidField, key, raw)
	}
	return s, nil
}

// LastName returns the person's last name.
func (r Record) LastName() string {
	return r.lastName
}

// FirstName returns the person's first name.
func (r Record) FirstName() string {
	return r.firstName
}

// Age returns the person's age.
func (r Record) Age() Age {
	return r.age
}

// Equal reports whether r and other have the same fields.
func (r Record) Equal(other Record) bool {
	return r == other
}

// String renders the record as "Last First (Age)".
func (r Record) String() string {
	return fmt.Sprintf("%s %s (%s)", r.lastName, r.firstName, r.age)
}

// SeedRecords returns the four records a session starts with when seeded.
func SeedRecords() []Record {
	return []Record{
		NewRecord("Doe", "John", AgeFromInt(42)),
		NewRecord("Martin", "Pierre", AgeFromInt(23)),
		NewRecord("Dune", "Christine", AgeFromInt(23)),
		NewRecord("Tellaz", "Marie", AgeFromInt(12)),
	}
}
