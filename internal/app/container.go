package app

import (
	"context"
	"fmt"
	"io"

	"github.com/sponsorwise/sponsorwise-cli-go/internal/adapter"
	"github.com/sponsorwise/sponsorwise-cli-go/internal/command"
	"github.com/sponsorwise/sponsorwise-cli-go/internal/config"
	"github.com/sponsorwise/sponsorwise-cli-go/internal/console"
	"github.com/sponsorwise/sponsorwise-cli-go/internal/service/cache"
	"github.com/sponsorwise/sponsorwise-cli-go/internal/service/insight"
	"github.com/sponsorwise/sponsorwise-cli-go/internal/workflow"
	"go.uber.org/zap"
)

// Container bundles the assembled services behind the console session.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	session      *console.Session
	orchestrator *workflow.Orchestrator
	cacheSvc     *cache.Service
	formatter    *adapter.ReportFormatter
	store        *workflow.Store
	sink         *console.Sink
}

// Session returns the assembled console session.
func (c *Container) Session() (*console.Session, error) {
	if c == nil || c.session == nil {
		return nil, fmt.Errorf("session not initialized")
	}
	return c.session, nil
}

// Greeting renders the banner and the step-1 form shown at startup.
func (c *Container) Greeting() error {
	if err := c.sink.Print(c.formatter.FormatHelp()); err != nil {
		return err
	}
	return c.sink.Print(c.formatter.FormatBrandForm(c.store.Snapshot().Brand))
}

// Shutdown waits for in-flight submissions and releases service handles.
func (c *Container) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.orchestrator.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		c.Logger.Warn("Shutdown timed out with submissions in flight")
	}

	if c.cacheSvc != nil {
		return c.cacheSvc.Close()
	}
	return nil
}

// Build assembles all services and returns a container holding a fully-wired
// console session reading from input and writing to output. All heavy-weight
// initialization (HTTP client, cache connection) happens here so the session
// stays focused on dispatch.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger, input io.Reader, output io.Writer) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	insightClient := insight.NewClient(cfg.Insight.BaseURL, logger)
	if !insightClient.Ping(ctx) {
		logger.Warn("Insight service not reachable at startup",
			zap.String("base_url", cfg.Insight.BaseURL))
	}

	var cacheSvc *cache.Service
	if cfg.Cache.Enabled {
		cacheSvc, err = cache.NewService(cache.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create cache service: %w", err)
		}
		closers = append(closers, func() {
			_ = cacheSvc.Close()
		})
	}

	store := workflow.NewStore(logger)
	formatter := adapter.NewReportFormatter()
	sink := console.NewSink(output)

	callbacks := workflow.Callbacks{
		OnBrandResult: func(state workflow.State) {
			rendered := formatter.FormatBrandHeader(state.Brand, state.Analysis) +
				"\n\n" + formatter.FormatDealForm(state.Deal) +
				"\n\n" + formatter.FormatEmptyState()
			if err := sink.Print(rendered); err != nil {
				logger.Error("Failed to render brand result", zap.Error(err))
			}
		},
		OnDealResult: func(state workflow.State) {
			if state.Result == nil {
				return
			}
			card := adapter.BuildScorecard(state.Result, state.Deal)
			if err := sink.Print(formatter.FormatReport(card)); err != nil {
				logger.Error("Failed to render report", zap.Error(err))
			}
		},
		OnError: func(message string) {
			if err := sink.Print(formatter.FormatError(message)); err != nil {
				logger.Error("Failed to render error", zap.Error(err))
			}
		},
	}

	// The interface value must stay nil when caching is disabled; a typed
	// nil pointer would pass the orchestrator's nil check.
	var analysisCache workflow.AnalysisCache
	if cacheSvc != nil {
		analysisCache = cacheSvc
	}

	orchestrator := workflow.NewOrchestrator(store, insightClient, insightClient, analysisCache, callbacks, logger)

	deps := &command.Dependencies{
		Store:        store,
		Orchestrator: orchestrator,
		Formatter:    formatter,
		SendMessage:  sink.Print,
		SendError: func(message string) error {
			return sink.Print(formatter.FormatError(message))
		},
		Logger: logger,
	}

	registry := command.NewRegistry()
	registry.Register(command.NewCompanyCommand(deps))
	registry.Register(command.NewIndustryCommand(deps))
	registry.Register(command.NewAnalyzeCommand(deps))
	registry.Register(command.NewSetCommand(deps))
	registry.Register(command.NewEvaluateCommand(deps))
	registry.Register(command.NewEditCommand(deps))
	registry.Register(command.NewShowCommand(deps))
	registry.Register(command.NewHelpCommand(deps))

	logger.Info("Application services assembled",
		zap.Int("commands", registry.Count()),
		zap.Bool("cache_enabled", cacheSvc != nil),
	)

	return &Container{
		Config:       cfg,
		Logger:       logger,
		session:      console.NewSession(input, sink, registry, logger),
		orchestrator: orchestrator,
		cacheSvc:     cacheSvc,
		formatter:    formatter,
		store:        store,
		sink:         sink,
	}, nil
}
