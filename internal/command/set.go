package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sponsorwise/sponsorwise-cli-go/internal/domain"
	"github.com/sponsorwise/sponsorwise-cli-go/internal/workflow"
)

// SetCommand edits one deal parameter. Allowed at any time, including while
// a prediction is in flight; the next evaluation picks up the new value.
type SetCommand struct {
	deps *Dependencies
}

func NewSetCommand(deps *Dependencies) *SetCommand {
	return &SetCommand{deps: deps}
}

func (c *SetCommand) Name() string {
	return "set"
}

func (c *SetCommand) Description() string {
	return "edit a deal field"
}

func (c *SetCommand) Execute(_ context.Context, params map[string]any) error {
	if err := ensureDeps(c.deps); err != nil {
		return err
	}

	fieldName, _ := params["field"].(string)
	value, _ := params["value"].(string)
	value = strings.TrimSpace(value)

	field, ok := workflow.ParseDealField(strings.ToLower(strings.TrimSpace(fieldName)))
	if !ok {
		return c.deps.SendError(fmt.Sprintf("Unknown field %q. Fields: %s", fieldName, fieldList()))
	}

	if err := c.deps.Store.EditDealField(field, value); err != nil {
		if errors.Is(err, workflow.ErrInvalidOption) {
			return c.deps.SendError(fmt.Sprintf("%q is not a valid %s. Options: %s", value, field, optionsFor(field)))
		}
		return err
	}

	return c.deps.SendMessage(fmt.Sprintf("%s = %s", field, value))
}

func fieldList() string {
	names := make([]string, 0, len(workflow.DealFields()))
	for _, field := range workflow.DealFields() {
		names = append(names, string(field))
	}
	return strings.Join(names, ", ")
}

func optionsFor(field workflow.DealField) string {
	var names []string
	switch field {
	case workflow.DealFieldCity:
		for _, city := range domain.Cities() {
			names = append(names, city.String())
		}
	case workflow.DealFieldEventType:
		for _, eventType := range domain.EventTypes() {
			names = append(names, eventType.String())
		}
	}
	return strings.Join(names, ", ")
}
