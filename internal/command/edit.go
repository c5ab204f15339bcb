package command

import (
	"context"
	"errors"

	"github.com/sponsorwise/sponsorwise-cli-go/internal/workflow"
)

// EditCommand returns the workflow to step 1, discarding the brand analysis
// and any prediction result so the brand can be corrected.
type EditCommand struct {
	deps *Dependencies
}

func NewEditCommand(deps *Dependencies) *EditCommand {
	return &EditCommand{deps: deps}
}

func (c *EditCommand) Name() string {
	return "edit"
}

func (c *EditCommand) Description() string {
	return "go back and change the brand profile"
}

func (c *EditCommand) Execute(_ context.Context, _ map[string]any) error {
	if err := ensureDeps(c.deps); err != nil {
		return err
	}

	if err := c.deps.Store.ResetToBrandEdit(); err != nil {
		if errors.Is(err, workflow.ErrWrongStep) {
			return c.deps.SendError("Already editing the brand profile.")
		}
		return err
	}

	state := c.deps.Store.Snapshot()
	return c.deps.SendMessage(c.deps.Formatter.FormatBrandForm(state.Brand))
}
