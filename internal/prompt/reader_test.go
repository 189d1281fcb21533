package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestReader_Line(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "Doe\n", want: "Doe"},
		{name: "crlf", input: "Doe\r\n", want: "Doe"},
		{name: "keeps spaces", input: "  Doe \t\n", want: "  Doe \t"},
		{name: "empty line", input: "\n", want: ""},
		{name: "no terminator", input: "Doe", want: "Doe"},
		{name: "only first line", input: "Doe\nJohn\n", want: "Doe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			r := NewReader(strings.NewReader(tt.input), &out)

			got, err := r.Line(context.Background(), "Last name: ")
			if err != nil {
				t.Fatalf("Line() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
			if out.String() != "Last name: " {
				t.Errorf("prompt output = %q, want %q", out.String(), "Last name: ")
			}
		})
	}
}

func TestReader_LineEOF(t *testing.T) {
	r := NewReader(strings.NewReader(""), io.Discard)

	_, err := r.Line(context.Background(), "Age: ")
	if !errors.Is(err, io.EOF) {
		t.Errorf("Line() error = %v, want %v", err, io.EOF)
	}

	// later reads keep reporting the end of input
	_, err = r.Line(context.Background(), "Age: ")
	if !errors.Is(err, io.EOF) {
		t.Errorf("second Line() error = %v, want %v", err, io.EOF)
	}
}

func TestReader_Fields(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader("Doe\nJohn\n42\n"), &out)

	got, err := r.Fields(context.Background(), "Last name: ", "First name: ", "Age: ")
	if err != nil {
		t.Fatalf("Fields() error = %v", err)
	}

	want := []string{"Doe", "John", "42"}
	if len(got) != len(want) {
		t.Fatalf("Fields() = %v answers, want %v", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Fields()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if out.String() != "Last name: First name: Age: " {
		t.Errorf("prompt output = %q", out.String())
	}
}

func TestReader_FieldsShortInput(t *testing.T) {
	r := NewReader(strings.NewReader("Doe\nJohn\n"), io.Discard)

	_, err := r.Fields(context.Background(), "Last name: ", "First name: ", "Age: ")
	if !errors.Is(err, io.EOF) {
		t.Errorf("Fields() error = %v, want %v", err, io.EOF)
	}
}

func TestReader_LineCancelledWhileBlocked(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	r := NewReader(pr, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		_, err := r.Line(ctx, "Choose: ")
		errCh <- err
	}()

	// nothing is ever written, so the read can only end through ctx
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Line() error = %v, want %v", err, context.Canceled)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("Line() still blocked after context cancel")
	}
}

func TestReader_LineAlreadyCancelled(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader("Doe\n"), &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Line(ctx, "Last name: ")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Line() error = %v, want %v", err, context.Canceled)
	}
	if out.Len() != 0 {
		t.Errorf("prompt output = %q, want empty", out.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestReader_WriteError(t *testing.T) {
	r := NewReader(strings.NewReader("Doe\n"), failingWriter{})

	_, err := r.Line(context.Background(), "Last name: ")
	if err == nil {
		t.Fatal("Line() expected error for failing writer, got nil")
	}
	if !strings.Contains(err.Error(), "failed to write prompt") {
		t.Errorf("error should mention 'failed to write prompt', got: %v", err)
	}
}
