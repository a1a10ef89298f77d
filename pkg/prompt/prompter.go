package prompt

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
)

// Option is a choice of a select question.
type Option struct {
	Label string
	Value string
}

// InputQuestion asks for free text.
type InputQuestion struct {
	Title    string
	Default  string
	Validate func(string) error
}

// SelectQuestion asks for one of Options.
type SelectQuestion struct {
	Title   string
	Options []Option
	Default string
}

// ConfirmQuestion asks yes or no.
type ConfirmQuestion struct {
	Title   string
	Default bool
}

// Prompter asks single questions.
type Prompter interface {
	Input(ctx context.Context, q InputQuestion) (string, error)
	Select(ctx context.Context, q SelectQuestion) (string, error)
	Confirm(ctx context.Context, q ConfirmQuestion) (bool, error)
}

// Terminal asks questions with huh forms.
type Terminal struct {
	accessible bool
}

// NewTerminal creates a terminal prompter. Accessible mode replaces the
// interactive widgets with plain line prompts.
func NewTerminal(accessible bool) *Terminal {
	return &Terminal{accessible: accessible}
}

func (t *Terminal) Input(ctx context.Context, q InputQuestion) (string, error) {
	value := q.Default
	field := huh.NewInput().Title(q.Title).Value(&value)
	if q.Validate != nil {
		field = field.Validate(q.Validate)
	}
	if err := t.run(ctx, field); err != nil {
		return "", err
	}
	return value, nil
}

func (t *Terminal) Select(ctx context.Context, q SelectQuestion) (string, error) {
	if len(q.Options) == 0 {
		return "", fmt.Errorf("%s: no options", q.Title)
	}

	options := make([]huh.Option[string], 0, len(q.Options))
	for _, o := range q.Options {
		options = append(options, huh.NewOption(o.Label, o.Value))
	}

	value := q.Default
	field := huh.NewSelect[string]().Title(q.Title).Options(options...).Value(&value)
	if err := t.run(ctx, field); err != nil {
		return "", err
	}
	return value, nil
}

func (t *Terminal) Confirm(ctx context.Context, q ConfirmQuestion) (bool, error) {
	value := q.Default
	field := huh.NewConfirm().Title(q.Title).Affirmative("Yes").Negative("No").Value(&value)
	if err := t.run(ctx, field); err != nil {
		return false, err
	}
	return value, nil
}

func (t *Terminal) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).WithAccessible(t.accessible)
	return form.RunWithContext(ctx)
}
