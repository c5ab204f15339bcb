package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/sponsorwise/sponsorwise-cli-go/internal/workflow"
	clierrors "github.com/sponsorwise/sponsorwise-cli-go/pkg/errors"
)

// AnalyzeCommand submits the brand profile to the insight service.
type AnalyzeCommand struct {
	deps *Dependencies
}

func NewAnalyzeCommand(deps *Dependencies) *AnalyzeCommand {
	return &AnalyzeCommand{deps: deps}
}

func (c *AnalyzeCommand) Name() string {
	return "analyze"
}

func (c *AnalyzeCommand) Description() string {
	return "generate the brand profile"
}

func (c *AnalyzeCommand) Execute(ctx context.Context, _ map[string]any) error {
	if err := ensureDeps(c.deps); err != nil {
		return err
	}

	err := c.deps.Orchestrator.SubmitBrand(ctx)
	if err == nil {
		return c.deps.SendMessage(c.deps.Formatter.FormatPending(workflow.StepBrandInput))
	}

	var validationErr *clierrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.deps.SendError(validationErr.Message)
	case errors.Is(err, workflow.ErrSubmissionInFlight):
		return c.deps.SendError("Brand analysis is already running.")
	case errors.Is(err, workflow.ErrWrongStep):
		return c.deps.SendError("Already in step 2. Use `edit` to re-analyze the brand.")
	default:
		return fmt.Errorf("analyze command: %w", err)
	}
}
