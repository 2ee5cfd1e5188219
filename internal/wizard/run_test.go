package wizard

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted answers fields from a queue and records what happened.
type scripted struct {
	answers  []string
	steps    []string
	problems []string
}

func (s *scripted) Step(_, _ int, title string) { s.steps = append(s.steps, title) }

func (s *scripted) Ask(_ context.Context, _ Field, _ string) (string, error) {
	if len(s.answers) == 0 {
		return "", ErrAborted
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func (s *scripted) Problem(err error) { s.problems = append(s.problems, err.Error()) }

func TestRun_RequestWithRetryAndBack(t *testing.T) {
	f := NewRequestForm(home)
	p := &scripted{answers: []string{
		"medical",                 // category
		"", "Need a prescription", // details: blank title is rejected
		"Pick up insulin", "",     // details again; description kept
		BackCommand,               // schedule -> back to details
		"", "",                    // details keep their answers
		"asap",                    // schedule
		"", "", "",                // location defaults
	}}
	require.NoError(t, Run(context.Background(), f.Wizard, p))
	assert.Equal(t, []string{"title is required"}, p.problems)
	assert.Equal(t, []string{
		"What kind of help do you need?",
		"Describe what you need",
		"Describe what you need",
		"When do you need it?",
		"Describe what you need",
		"When do you need it?",
		"Where do you need it?",
	}, p.steps)

	out, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, "Pick up insulin", out.Title)
	assert.Equal(t, "Need a prescription", out.Description)
	assert.Equal(t, "asap", string(out.Timeframe))
}

func TestRun_ClearOptionalField(t *testing.T) {
	f := NewRequestForm(home)
	p := &scripted{answers: []string{
		"food",                         // category
		"Soup", "Bring soup",           // details
		BackCommand,                    // schedule -> back to details
		BackCommand,                    // details -> back to category
		ClearCommand,                   // category back to unclassified
		"", "",                         // details kept
		"",                             // schedule default
		ClearCommand, ClearCommand, "", // required location fields ignore the clear
	}}
	require.NoError(t, Run(context.Background(), f.Wizard, p))

	out, err := f.Build()
	require.NoError(t, err)
	assert.Empty(t, out.Category)
	assert.Equal(t, home.Address, out.Location.Address)
}

func TestRun_AbortPropagates(t *testing.T) {
	p := &scripted{answers: []string{"food"}}
	err := Run(context.Background(), NewOfferForm(nil).Wizard, p)
	assert.ErrorIs(t, err, ErrAborted)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, NewRequestForm(nil).Wizard, &scripted{})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLinePrompter(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("  food \n\nlast"), &out)
	ctx := context.Background()

	f := Field{Name: FieldCategory, Label: "Category", Options: []string{"food", "other"}}
	ans, err := p.Ask(ctx, f, "")
	require.NoError(t, err)
	assert.Equal(t, "food", ans)
	assert.Contains(t, out.String(), "Category (food|other): ")

	ans, err = p.Ask(ctx, Field{Name: "n", Label: "Count", Help: "meters"}, "5000")
	require.NoError(t, err)
	assert.Equal(t, "", ans)
	assert.Contains(t, out.String(), "Count (meters) [5000]: ")
	assert.Equal(t, "Tag (- to clear) [x]: ", prompt(Field{Name: "t", Label: "Tag", Optional: true}, "x"))

	ans, err = p.Ask(ctx, Field{Name: "pw", Label: "Password", Secret: true}, "hidden")
	require.NoError(t, err)
	assert.Equal(t, "last", ans, "non-terminal input is read as a plain line")
	assert.NotContains(t, out.String(), "hidden")

	_, err = p.Ask(ctx, f, "")
	assert.ErrorIs(t, err, ErrAborted)
}
