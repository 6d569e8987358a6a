package bidding

import (
	"context"
	"errors"
	"fmt"

	"marketplace-bidding/internal/biddingerrors"
	"marketplace-bidding/utils"
)

// sagaStep is one write of a multi-write sequence and the write that undoes it
type sagaStep struct {
	name string
	do   func(ctx context.Context) error
	undo func(ctx context.Context) error // nil when there is nothing to undo
}

// saga runs steps in order; when one fails, the completed steps are undone in reverse
type saga struct {
	name  string
	steps []sagaStep
}

func newSaga(name string, steps ...sagaStep) *saga {
	return &saga{name: name, steps: steps}
}

func (sg *saga) run(ctx context.Context) error {
	done := make([]sagaStep, 0, len(sg.steps))
	for _, step := range sg.steps {
		err := step.do(ctx)
		if err == nil {
			done = append(done, step)
			continue
		}

		utils.Error("Saga step failed", map[string]any{
			"saga":  sg.name,
			"step":  step.name,
			"error": err.Error(),
		})
		// compensations must run even when the request has been cancelled
		compErr := sg.compensate(context.WithoutCancel(ctx), done)
		return &biddingerrors.StepError{
			Saga:            sg.name,
			Step:            step.name,
			Err:             err,
			CompensationErr: compErr,
		}
	}
	return nil
}

func (sg *saga) compensate(ctx context.Context, done []sagaStep) error {
	var errs []error
	for i := len(done) - 1; i >= 0; i-- {
		step := done[i]
		if step.undo == nil {
			continue
		}
		if err := step.undo(ctx); err != nil {
			utils.Error("Saga compensation failed", map[string]any{
				"saga":  sg.name,
				"step":  step.name,
				"error": err.Error(),
			})
			errs = append(errs, fmt.Errorf("undo %s: %w", step.name, err))
			continue
		}
		utils.Info("Saga step compensated", map[string]any{
			"saga": sg.name,
			"step": step.name,
		})
	}
	return errors.Join(errs...)
}
