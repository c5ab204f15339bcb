package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/sponsorwise/sponsorwise-cli-go/internal/workflow"
)

// EvaluateCommand submits the deal parameters for scoring.
type EvaluateCommand struct {
	deps *Dependencies
}

func NewEvaluateCommand(deps *Dependencies) *EvaluateCommand {
	return &EvaluateCommand{deps: deps}
}

func (c *EvaluateCommand) Name() string {
	return "evaluate"
}

func (c *EvaluateCommand) Description() string {
	return "score the deal"
}

func (c *EvaluateCommand) Execute(ctx context.Context, _ map[string]any) error {
	if err := ensureDeps(c.deps); err != nil {
		return err
	}

	err := c.deps.Orchestrator.SubmitDeal(ctx)
	if err == nil {
		return c.deps.SendMessage(c.deps.Formatter.FormatPending(workflow.StepDealInput))
	}

	switch {
	case errors.Is(err, workflow.ErrWrongStep):
		return c.deps.SendError("Complete step 1 first: `company`, `industry`, then `analyze`.")
	case errors.Is(err, workflow.ErrSubmissionInFlight):
		return c.deps.SendError("A prediction is already running.")
	default:
		return fmt.Errorf("evaluate command: %w", err)
	}
}
