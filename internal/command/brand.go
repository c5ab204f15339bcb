package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sponsorwise/sponsorwise-cli-go/internal/constants"
	"github.com/sponsorwise/sponsorwise-cli-go/internal/workflow"
)

// BrandFieldCommand edits one brand profile field (step 1 only).
type BrandFieldCommand struct {
	deps  *Dependencies
	field workflow.BrandField
}

func NewCompanyCommand(deps *Dependencies) *BrandFieldCommand {
	return &BrandFieldCommand{deps: deps, field: workflow.BrandFieldCompanyName}
}

func NewIndustryCommand(deps *Dependencies) *BrandFieldCommand {
	return &BrandFieldCommand{deps: deps, field: workflow.BrandFieldIndustry}
}

func (c *BrandFieldCommand) Name() string {
	if c.field == workflow.BrandFieldCompanyName {
		return "company"
	}
	return "industry"
}

func (c *BrandFieldCommand) Description() string {
	return fmt.Sprintf("set the sponsor's %s", c.field)
}

func (c *BrandFieldCommand) Execute(_ context.Context, params map[string]any) error {
	if err := ensureDeps(c.deps); err != nil {
		return err
	}

	value, _ := params["value"].(string)
	value = strings.TrimSpace(value)
	if value == "" {
		return c.deps.SendError(fmt.Sprintf("Usage: %s <name>", c.Name()))
	}
	if len(value) > constants.InputLimits.MaxFieldLength {
		value = value[:constants.InputLimits.MaxFieldLength]
	}

	if err := c.deps.Store.EditBrandField(c.field, value); err != nil {
		if errors.Is(err, workflow.ErrWrongStep) {
			return c.deps.SendError("The brand profile is locked in step 2. Use `edit` to change it.")
		}
		return err
	}

	return c.deps.SendMessage(fmt.Sprintf("%s = %s", c.field, value))
}
