package wizard

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStepInvalid wraps the validation failure of a step.
	ErrStepInvalid = errors.New("step is incomplete")
	// ErrNotLastStep is returned by Submit before the last step is reached.
	ErrNotLastStep = errors.New("wizard is not on its last step")
)

// Field is one input of a step.
type Field struct {
	Name    string
	Label   string
	Help    string
	Default string
	// Options, when set, restricts answers to one of these values.
	Options  []string
	Optional bool
	Secret   bool
}

// Values holds the raw answers keyed by field name.
type Values map[string]string

// Step is a page of the wizard.
type Step struct {
	Name   string
	Title  string
	Fields []Field
	// Validate checks this step's answers. Nil means always valid.
	Validate func(Values) error
}

// Wizard tracks the current step and collected answers.
type Wizard struct {
	steps   []Step
	current int
	values  Values
}

// New returns a wizard over steps, starting at the first one with field
// defaults filled in.
func New(steps ...Step) *Wizard {
	w := &Wizard{steps: steps, values: Values{}}
	for _, s := range steps {
		for _, f := range s.Fields {
			if f.Default != "" {
				w.values[f.Name] = f.Default
			}
		}
	}
	return w
}

// Current returns the step being filled in.
func (w *Wizard) Current() Step { return w.steps[w.current] }

// Index returns the zero-based position of the current step.
func (w *Wizard) Index() int { return w.current }

// Len returns the number of steps.
func (w *Wizard) Len() int { return len(w.steps) }

// IsLast reports whether the current step is the final one.
func (w *Wizard) IsLast() bool { return w.current == len(w.steps)-1 }

// Get returns the answer for name.
func (w *Wizard) Get(name string) string { return w.values[name] }

// Set records an answer. Surrounding whitespace is dropped.
func (w *Wizard) Set(name, value string) { w.values[name] = strings.TrimSpace(value) }

// Values returns a copy of all answers.
func (w *Wizard) Values() Values {
	out := make(Values, len(w.values))
	for k, v := range w.values {
		out[k] = v
	}
	return out
}

// Next validates the current step and advances. On the last step it only
// validates.
func (w *Wizard) Next() error {
	if err := w.check(w.current); err != nil {
		return err
	}
	if !w.IsLast() {
		w.current++
	}
	return nil
}

// Back moves to the previous step without validating. It reports false on
// the first step.
func (w *Wizard) Back() bool {
	if w.current == 0 {
		return false
	}
	w.current--
	return true
}

// Submit revalidates every step. It fails with ErrNotLastStep unless the
// wizard is on its last step, and on a validation failure it moves to the
// first failing step.
func (w *Wizard) Submit() error {
	if !w.IsLast() {
		return ErrNotLastStep
	}
	for i := range w.steps {
		if err := w.check(i); err != nil {
			w.current = i
			return err
		}
	}
	return nil
}

func (w *Wizard) check(i int) error {
	s := w.steps[i]
	for _, f := range s.Fields {
		v := w.values[f.Name]
		if v == "" {
			if f.Optional {
				continue
			}
			return &StepError{Step: s.Name, Err: fmt.Errorf("%s is required", f.label())}
		}
		if len(f.Options) > 0 && !contains(f.Options, v) {
			return &StepError{Step: s.Name, Err: fmt.Errorf("%s must be one of: %s", f.label(), strings.Join(f.Options, ", "))}
		}
	}
	if s.Validate == nil {
		return nil
	}
	if err := s.Validate(w.Values()); err != nil {
		return &StepError{Step: s.Name, Err: err}
	}
	return nil
}

// StepError is a validation failure of a named step. It matches ErrStepInvalid.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string { return e.Err.Error() }

func (e *StepError) Unwrap() []error { return []error{ErrStepInvalid, e.Err} }

func (f Field) label() string {
	if f.Label != "" {
		return strings.ToLower(f.Label)
	}
	return f.Name
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
