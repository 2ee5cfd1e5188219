package wizard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoSteps() *Wizard {
	return New(
		Step{Name: "one", Fields: []Field{{Name: "a", Label: "A"}}},
		Step{
			Name:   "two",
			Fields: []Field{{Name: "b", Options: []string{"x", "y"}}, {Name: "c", Optional: true}},
			Validate: func(v Values) error {
				if v["c"] == "bad" {
					return errors.New("c is bad")
				}
				return nil
			},
		},
	)
}

func TestNext_GatedByValidation(t *testing.T) {
	w := twoSteps()
	err := w.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStepInvalid)
	assert.Equal(t, "a is required", err.Error())
	assert.Equal(t, 0, w.Index())

	w.Set("a", "  hello ")
	assert.Equal(t, "hello", w.Get("a"))
	require.NoError(t, w.Next())
	assert.Equal(t, 1, w.Index())
	assert.True(t, w.IsLast())
}

func TestBack_NeverValidates(t *testing.T) {
	w := twoSteps()
	assert.False(t, w.Back())
	w.Set("a", "ok")
	require.NoError(t, w.Next())
	w.Set("b", "nope")
	assert.True(t, w.Back())
	assert.Equal(t, 0, w.Index())
	assert.Equal(t, "nope", w.Get("b"))
}

func TestOptions_Enforced(t *testing.T) {
	w := twoSteps()
	w.Set("a", "ok")
	require.NoError(t, w.Next())
	w.Set("b", "z")
	err := w.Next()
	assert.EqualError(t, err, "b must be one of: x, y")
	var se *StepError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "two", se.Step)
}

func TestSubmit_OnlyFromLastStep(t *testing.T) {
	w := twoSteps()
	assert.ErrorIs(t, w.Submit(), ErrNotLastStep)

	w.Set("a", "ok")
	require.NoError(t, w.Next())
	w.Set("b", "x")
	w.Set("c", "bad")
	err := w.Submit()
	assert.ErrorIs(t, err, ErrStepInvalid)
	assert.EqualError(t, err, "c is bad")

	w.Set("c", "")
	require.NoError(t, w.Submit())
}

func TestSubmit_RevalidatesEarlierSteps(t *testing.T) {
	w := twoSteps()
	w.Set("a", "ok")
	require.NoError(t, w.Next())
	w.Set("a", "")
	w.Set("b", "y")
	err := w.Submit()
	assert.ErrorIs(t, err, ErrStepInvalid)
	assert.Equal(t, 0, w.Index(), "moves to the failing step")
}

func TestDefaults_Prefilled(t *testing.T) {
	w := New(Step{Name: "s", Fields: []Field{{Name: "n", Default: "5"}}})
	assert.Equal(t, "5", w.Get("n"))
	vals := w.Values()
	vals["n"] = "changed"
	assert.Equal(t, "5", w.Get("n"), "Values returns a copy")
}
