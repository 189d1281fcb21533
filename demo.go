package roster

import (
	"fmt"
	"io"
)

// DemoMapping returns the malformed mapping shown by [WriteDemo].
//
// The first name is stored under "prenom" instead of "first_name", so
// [RecordFromMap] rejects it with [ErrMissingField].
func DemoMapping() map[string]any {
	return map[string]any{
		"last_name": "Doe",
		"prenom":    "John",
		"age":       42,
	}
}

// WriteDemo prints the two startup demonstrations to w: the raw malformed
// mapping with the error it produces, then the seed records as a set.
func WriteDemo(w io.Writer) error {
	m := DemoMapping()
	if _, err := fmt.Fprintln(w, m); err != nil {
		return err
	}
	if _, err := RecordFromMap(m); err != nil {
		if _, err := fmt.Fprintf(w, "invalid record: %v\n", err); err != nil {
			return err
		}
	}

	seed := SeedRecords()
	set := make(map[Record]struct{}, len(seed))
	for _, r := range seed {
		set[r] = struct{}{}
	}
	if _, err := fmt.Fprintf(w, "%d records:", len(set)); err != nil {
		return err
	}
	for _, r := range seed {
		if _, err := fmt.Fprintf(w, " {%s}", r); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
