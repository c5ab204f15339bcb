package command

import (
	"context"

	"github.com/sponsorwise/sponsorwise-cli-go/internal/adapter"
	"github.com/sponsorwise/sponsorwise-cli-go/internal/workflow"
	"go.uber.org/zap"
)

type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, params map[string]any) error
}

type Dependencies struct {
	Store        *workflow.Store
	Orchestrator *workflow.Orchestrator
	Formatter    *adapter.ReportFormatter
	SendMessage  func(message string) error
	SendError    func(message string) error
	Logger       *zap.Logger
}
