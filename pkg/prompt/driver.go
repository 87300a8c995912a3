package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig configures a single line prompt.
type InputConfig struct {
	Message string
	Default string
	Help    string
}

// TextAreaConfig configures a multi-line prompt.
type TextAreaConfig struct {
	Message string
	Default string
	Help    string
}

// Driver abstracts the terminal so sessions can be tested without one.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	TextArea(ctx context.Context, cfg TextAreaConfig) (string, error)
	// Acknowledge shows msg and blocks until the user confirms it.
	Acknowledge(ctx context.Context, msg string) error
	Info(ctx context.Context, msg string) error
}

type surveyDriver struct {
	out  io.Writer
	opts []survey.AskOpt
}

// NewSurveyDriver returns a Driver backed by survey on the process terminal.
func NewSurveyDriver() Driver {
	return &surveyDriver{out: os.Stdout}
}

// NewSurveyDriverWithStdio binds the driver to explicit terminal streams.
func NewSurveyDriverWithStdio(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) Driver {
	return &surveyDriver{
		out:  out,
		opts: []survey.AskOpt{survey.WithStdio(in, out, errOut)},
	}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out, d.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) TextArea(ctx context.Context, cfg TextAreaConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Multiline{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out, d.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Acknowledge(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var ok bool
	prompt := &survey.Confirm{
		Message: msg,
		Default: true,
		Help:    "Press enter to continue",
	}
	if err := survey.AskOne(prompt, &ok, d.opts...); err != nil {
		return translateSurveyErr(err)
	}
	return nil
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
