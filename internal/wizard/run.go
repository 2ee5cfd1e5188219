package wizard

import (
	"context"
	"errors"
)

const (
	// BackCommand typed as an answer returns to the previous step.
	BackCommand = ":back"
	// ClearCommand typed as an answer empties an optional field. Required
	// fields keep their value.
	ClearCommand = "-"
)

// ErrAborted is returned by Run when the prompter signals end of input.
var ErrAborted = errors.New("wizard aborted")

// Prompter asks questions on behalf of Run.
type Prompter interface {
	// Step announces the step about to be filled in.
	Step(index, total int, title string)
	// Ask returns the answer for f. current is the value already recorded,
	// which an empty answer keeps and ClearCommand drops when f is optional.
	Ask(ctx context.Context, f Field, current string) (string, error)
	// Problem reports why a step was not accepted.
	Problem(err error)
}

// Run drives w interactively until it submits. A step that fails validation
// is asked again; BackCommand moves to the previous step.
func Run(ctx context.Context, w *Wizard, p Prompter) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		step := w.Current()
		p.Step(w.Index(), w.Len(), step.Title)

		back := false
		for _, f := range step.Fields {
			ans, err := p.Ask(ctx, f, w.Get(f.Name))
			if err != nil {
				return err
			}
			if ans == BackCommand {
				back = true
				break
			}
			switch {
			case ans == ClearCommand:
				if f.Optional {
					w.Set(f.Name, "")
				}
			case ans != "":
				w.Set(f.Name, ans)
			}
		}
		if back {
			w.Back()
			continue
		}

		if !w.IsLast() {
			if err := w.Next(); err != nil {
				p.Problem(err)
			}
			continue
		}
		if err := w.Submit(); err != nil {
			p.Problem(err)
			continue
		}
		return nil
	}
}
