// Package prompt provides the yes/no operator interaction used by migrations.
//
// Migrations depend only on Confirmer, so the engine runs the same way behind
// a terminal, a pipe, a fixed non-interactive answer or a scripted test double.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Confirmer asks the operator a yes/no question. An empty answer means yes.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// ErrNoAnswer is returned by Scripted when it runs out of canned answers.
var ErrNoAnswer = errors.New("no answer available")

// ErrInterrupted is returned when the operator aborts a prompt with Ctrl-C.
var ErrInterrupted = errors.New("prompt interrupted")

// IsAffirmative applies the line protocol: "", "y" and "yes"
// (case-insensitive, surrounding whitespace ignored) mean yes.
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "y", "yes":
		return true
	}
	return false
}

// Line asks on Out and reads one line from In.
type Line struct {
	out io.Writer
	in  *bufio.Reader
}

// NewLine returns a line-based Confirmer. The reader is buffered once so
// consecutive questions on the same input do not lose data.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{out: out, in: bufio.NewReader(in)}
}

// Confirm writes "question (Y/n): " and reads the answer. End of input with
// nothing typed is treated as a decline.
func (l *Line) Confirm(question string) (bool, error) {
	fmt.Fprintf(l.out, "%s (Y/n): ", question)

	answer, err := l.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("failed to read answer: %w", err)
		}
		fmt.Fprintln(l.out)
		if answer == "" {
			return false, nil
		}
	}
	return IsAffirmative(answer), nil
}

// Fixed answers every question the same way without reading input. It is
// the non-interactive mode for automation.
type Fixed struct {
	Answer bool
	Out    io.Writer
}

// Confirm echoes the question and the fixed answer.
func (f Fixed) Confirm(question string) (bool, error) {
	if f.Out != nil {
		answer := "n"
		if f.Answer {
			answer = "y"
		}
		fmt.Fprintf(f.Out, "%s (Y/n): %s (non-interactive)\n", question, answer)
	}
	return f.Answer, nil
}

// Scripted returns canned answers in order and records the questions asked.
type Scripted struct {
	Answers []string
	Asked   []string
}

// Confirm pops the next answer and applies the line protocol to it.
func (s *Scripted) Confirm(question string) (bool, error) {
	s.Asked = append(s.Asked, question)
	if len(s.Answers) == 0 {
		return false, fmt.Errorf("%q: %w", question, ErrNoAnswer)
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return IsAffirmative(answer), nil
}
