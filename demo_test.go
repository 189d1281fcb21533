package roster

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteDemo(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDemo(&buf); err != nil {
		t.Fatalf("WriteDemo() error = %v", err)
	}

	expectedPhrases := []string{
		"map[age:42 last_name:Doe prenom:John]",
		`invalid record: missing field "first_name"`,
		"4 records:",
		"{Doe John (42)}",
		"{Tellaz Marie (12)}",
	}

	output := buf.String()
	for _, phrase := range expectedPhrases {
		if !strings.Contains(output, phrase) {
			t.Errorf("output missing %q\nGot: %s", phrase, output)
		}
	}
}

func TestWriteDemo_OutputError(t *testing.T) {
	if err := WriteDemo(failingWriter{}); err == nil {
		t.Error("WriteDemo() expected error for failing writer, got nil")
	}
}
