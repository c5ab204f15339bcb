package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sponsorwise/sponsorwise-cli-go/internal/command"
	"go.uber.org/zap"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		key    string
		params map[string]any
	}{
		{"empty", "   ", "", nil},
		{"bare command", "analyze", "analyze", nil},
		{"uppercase key", "SHOW", "show", nil},
		{"multi word value", "company Red Bull GmbH", "company", map[string]any{"value": "Red Bull GmbH"}},
		{"industry", "industry  Energy Drinks ", "industry", map[string]any{"value": "Energy Drinks"}},
		{"set enum", "set event_type Music Concert", "set", map[string]any{"field": "event_type", "value": "Music Concert"}},
		{"set without value", "set date", "set", map[string]any{"field": "date", "value": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, params := ParseLine(tt.line)
			if key != tt.key {
				t.Fatalf("key = %q, want %q", key, tt.key)
			}
			if len(params) != len(tt.params) {
				t.Fatalf("params = %v, want %v", params, tt.params)
			}
			for k, want := range tt.params {
				if params[k] != want {
					t.Fatalf("params[%q] = %v, want %v", k, params[k], want)
				}
			}
		})
	}
}

type echoCommand struct {
	sink *Sink
}

func (c *echoCommand) Name() string        { return "ping" }
func (c *echoCommand) Description() string { return "reply with pong" }

func (c *echoCommand) Execute(_ context.Context, _ map[string]any) error {
	return c.sink.Print("pong")
}

func TestSessionDispatchAndQuit(t *testing.T) {
	var out bytes.Buffer
	sink := NewSink(&out)

	registry := command.NewRegistry()
	registry.Register(&echoCommand{sink: sink})

	input := strings.NewReader("ping\nbogus\nquit\nping\n")
	session := NewSession(input, sink, registry, zap.NewNop())

	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	rendered := out.String()
	if !strings.Contains(rendered, "pong") {
		t.Fatalf("dispatched command produced no output:\n%s", rendered)
	}
	if !strings.Contains(rendered, "Unknown command") {
		t.Fatalf("unknown command not reported:\n%s", rendered)
	}
	if strings.Count(rendered, "pong") != 1 {
		t.Fatalf("input after quit must not run:\n%s", rendered)
	}
}

func TestSessionStopsOnEOF(t *testing.T) {
	var out bytes.Buffer
	sink := NewSink(&out)

	session := NewSession(strings.NewReader(""), sink, command.NewRegistry(), zap.NewNop())
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
}
