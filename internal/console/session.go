package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sponsorwise/sponsorwise-cli-go/internal/command"
	"go.uber.org/zap"
)

// Sink serializes all terminal output. Commands and async submission
// callbacks both write through it, so a result landing mid-keystroke never
// interleaves with a command's own reply.
type Sink struct {
	mu     sync.Mutex
	writer io.Writer
}

func NewSink(writer io.Writer) *Sink {
	return &Sink{writer: writer}
}

// Print writes one message block followed by a blank line.
func (s *Sink) Print(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintf(s.writer, "%s\n\n", message)
	return err
}

// Session reads lines from the terminal, parses them into commands, and
// dispatches through the registry until quit or EOF.
type Session struct {
	reader   io.Reader
	sink     *Sink
	registry *command.Registry
	logger   *zap.Logger
}

func NewSession(reader io.Reader, sink *Sink, registry *command.Registry, logger *zap.Logger) *Session {
	return &Session{
		reader:   reader,
		sink:     sink,
		registry: registry,
		logger:   logger,
	}
}

// Run executes the read loop. It returns when the user quits, input hits
// EOF, or the context is cancelled.
func (s *Session) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.reader)

	lines := make(chan string)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return scanner.Err()
			}

			key, params := ParseLine(line)
			if key == "" {
				continue
			}
			if key == "quit" || key == "exit" {
				return nil
			}

			if err := s.registry.Execute(ctx, key, params); err != nil {
				if errors.Is(err, command.ErrUnknownCommand) {
					if printErr := s.sink.Print(fmt.Sprintf("❌ Unknown command %q. Type `help`.", key)); printErr != nil {
						return printErr
					}
					continue
				}
				s.logger.Error("Command failed",
					zap.String("command", key),
					zap.Error(err),
				)
				if printErr := s.sink.Print("❌ Something went wrong. Check the log for details."); printErr != nil {
					return printErr
				}
			}
		}
	}
}

// ParseLine splits a raw input line into a command key and its parameters.
// The value-taking commands consume the remainder of the line verbatim, so
// multi-word company names and event types need no quoting.
func ParseLine(line string) (string, map[string]any) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", nil
	}

	key, rest, _ := strings.Cut(trimmed, " ")
	key = strings.ToLower(key)
	rest = strings.TrimSpace(rest)

	switch key {
	case "company", "industry":
		return key, map[string]any{"value": rest}
	case "set":
		field, value, _ := strings.Cut(rest, " ")
		return key, map[string]any{
			"field": field,
			"value": strings.TrimSpace(value),
		}
	default:
		return key, nil
	}
}
