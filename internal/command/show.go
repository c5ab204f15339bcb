package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sponsorwise/sponsorwise-cli-go/internal/adapter"
	"github.com/sponsorwise/sponsorwise-cli-go/internal/workflow"
)

// ShowCommand re-renders the current step: the brand form in step 1; the
// brand header, deal form, and report (or pending/empty state) in step 2.
type ShowCommand struct {
	deps *Dependencies
}

func NewShowCommand(deps *Dependencies) *ShowCommand {
	return &ShowCommand{deps: deps}
}

func (c *ShowCommand) Name() string {
	return "show"
}

func (c *ShowCommand) Description() string {
	return "re-render the current step"
}

func (c *ShowCommand) Execute(_ context.Context, _ map[string]any) error {
	if err := ensureDeps(c.deps); err != nil {
		return err
	}

	state := c.deps.Store.Snapshot()
	if state.Step == workflow.StepBrandInput {
		return c.deps.SendMessage(c.deps.Formatter.FormatBrandForm(state.Brand))
	}

	var sb strings.Builder
	sb.WriteString(c.deps.Formatter.FormatBrandHeader(state.Brand, state.Analysis))
	sb.WriteString("\n\n")
	sb.WriteString(c.deps.Formatter.FormatDealForm(state.Deal))
	sb.WriteString("\n\n")

	switch {
	case state.DealPending:
		sb.WriteString(c.deps.Formatter.FormatPending(workflow.StepDealInput))
	case state.Result != nil:
		sb.WriteString(c.deps.Formatter.FormatReport(adapter.BuildScorecard(state.Result, state.Deal)))
	default:
		sb.WriteString(c.deps.Formatter.FormatEmptyState())
	}

	return c.deps.SendMessage(sb.String())
}

func ensureDeps(deps *Dependencies) error {
	if deps == nil {
		return fmt.Errorf("command dependencies not configured")
	}
	if deps.SendMessage == nil || deps.SendError == nil {
		return fmt.Errorf("message callbacks not configured")
	}
	if deps.Store == nil || deps.Orchestrator == nil || deps.Formatter == nil {
		return fmt.Errorf("workflow services not configured")
	}
	return nil
}
