package command

import "context"

type HelpCommand struct {
	deps *Dependencies
}

func NewHelpCommand(deps *Dependencies) *HelpCommand {
	return &HelpCommand{deps: deps}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "list the available commands"
}

func (c *HelpCommand) Execute(_ context.Context, _ map[string]any) error {
	if err := ensureDeps(c.deps); err != nil {
		return err
	}
	return c.deps.SendMessage(c.deps.Formatter.FormatHelp())
}
