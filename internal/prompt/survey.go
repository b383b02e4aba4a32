package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"golang.org/x/term"
)

// Modes accepted by New.
const (
	ModeAuto   = "auto"
	ModeLine   = "line"
	ModeSurvey = "survey"
)

// Survey renders the question with survey's terminal UI. It needs a real tty.
type Survey struct {
	In  terminal.FileReader
	Out terminal.FileWriter
	Err io.Writer
}

// Confirm asks with a survey.Confirm prompt defaulting to yes.
func (s Survey) Confirm(question string) (bool, error) {
	var ok bool
	p := &survey.Confirm{
		Message: strings.TrimSpace(question),
		Default: true,
	}
	if err := survey.AskOne(p, &ok, survey.WithStdio(s.In, s.Out, s.Err)); err != nil {
		return false, askError(question, err)
	}
	return ok, nil
}

func askError(question string, err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return fmt.Errorf("%q: %w", strings.TrimSpace(question), ErrInterrupted)
	}
	return err
}

// Options selects a Confirmer.
type Options struct {
	// Mode is one of ModeAuto, ModeLine or ModeSurvey. Empty means ModeLine.
	Mode string
	// DefaultAnswer, when "yes" or "no", answers every question without input.
	DefaultAnswer string
}

// New builds the Confirmer for the given options and streams.
//
// A DefaultAnswer wins over Mode. ModeSurvey needs in and out to be files;
// ModeAuto uses survey only when both are terminals and falls back to the
// line protocol otherwise.
func New(opts Options, in io.Reader, out io.Writer) (Confirmer, error) {
	switch strings.ToLower(opts.DefaultAnswer) {
	case "":
	case "y", "yes":
		return Fixed{Answer: true, Out: out}, nil
	case "n", "no":
		return Fixed{Answer: false, Out: out}, nil
	default:
		return nil, fmt.Errorf("invalid default answer %q (want yes or no)", opts.DefaultAnswer)
	}

	switch opts.Mode {
	case "", ModeLine:
		return NewLine(in, out), nil
	case ModeSurvey:
		s, ok := newSurvey(in, out)
		if !ok {
			return nil, fmt.Errorf("survey prompts need a terminal")
		}
		return s, nil
	case ModeAuto:
		if s, ok := newSurvey(in, out); ok && isTerminal(s.In) && isTerminal(s.Out) {
			return s, nil
		}
		return NewLine(in, out), nil
	default:
		return nil, fmt.Errorf("invalid prompt mode %q (want auto, line or survey)", opts.Mode)
	}
}

func newSurvey(in io.Reader, out io.Writer) (Survey, bool) {
	fin, ok := in.(terminal.FileReader)
	if !ok {
		return Survey{}, false
	}
	fout, ok := out.(terminal.FileWriter)
	if !ok {
		return Survey{}, false
	}
	return Survey{In: fin, Out: fout, Err: out}, true
}

type fder interface {
	Fd() uintptr
}

func isTerminal(f fder) bool {
	return term.IsTerminal(int(f.Fd()))
}
