package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// lineResult is one line handed over by the read loop.
type lineResult struct {
	line string
	err  error
}

// Reader prompts on an output stream and reads answers from an input stream.
//
// Input is consumed by a single background goroutine, started on the first
// read, so a pending read can be abandoned when its context is cancelled.
// A line that arrives after its caller gave up goes to the next caller.
type Reader struct {
	in  *bufio.Reader
	out io.Writer

	once  sync.Once
	lines chan lineResult
	// err is the error that ended the read loop; set before lines is closed.
	err error
}

// NewReader creates a [Reader] over in, writing labels to out.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		in:    bufio.NewReader(in),
		out:   out,
		lines: make(chan lineResult),
	}
}

// Line writes label and returns the next line of input.
//
// The trailing "\n" or "\r\n" is removed; nothing else is. A final line with
// no terminator is returned as is. Returns io.EOF only when the input is
// exhausted before any character was read, and ctx.Err() if ctx is done
// before a line arrives.
func (r *Reader) Line(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(r.out, label); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	r.once.Do(func() {
		go r.readLoop()
	})

	select {
	case res, ok := <-r.lines:
		if !ok {
			return "", r.err
		}
		return res.line, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Fields prompts for each label in turn and returns the answers in order.
//
// Reading stops at the first error, which is returned unwrapped for io.EOF
// and context errors.
func (r *Reader) Fields(ctx context.Context, labels ...string) ([]string, error) {
	answers := make([]string, 0, len(labels))
	for _, label := range labels {
		answer, err := r.Line(ctx, label)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}

// readLoop reads lines until the first error and hands each one to Line.
// After the error is delivered the channel is closed, so later calls get
// the same error instead of blocking.
//
// It blocks on the send until a caller asks for the line. If every caller
// has gone away, the goroutine stays parked until the process exits.
func (r *Reader) readLoop() {
	for {
		line, err := r.readLine()
		r.lines <- lineResult{line: line, err: err}
		if err != nil {
			r.err = err
			close(r.lines)
			return
		}
	}
}

// readLine reads one line from the input and strips its terminator.
func (r *Reader) readLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
