package insight

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sponsorwise/sponsorwise-cli-go/internal/domain"
	"go.uber.org/zap"
)

func TestAnalyzeBrandDecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analyze-brand" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}

		var profile domain.BrandProfile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if profile.CompanyName != "Red Bull" || profile.Industry != "Energy Drinks" {
			t.Fatalf("unexpected payload: %+v", profile)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"persona":            "Challenger",
			"strategy_statement": "Maximize visibility.",
			"target_audience":    "General Audience",
			"unknown_extra":      true,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, zap.NewNop())
	analysis, err := client.AnalyzeBrand(context.Background(), domain.BrandProfile{
		CompanyName: "Red Bull",
		Industry:    "Energy Drinks",
	})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if analysis.Persona != "Challenger" || analysis.StrategyStatement != "Maximize visibility." {
		t.Fatalf("unexpected analysis: %+v", analysis)
	}
}

func TestPredictSendsMergedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if payload["sponsor_category"] != "Red Bull (Energy Drinks)" {
			t.Fatalf("sponsor_category missing: %v", payload)
		}
		if payload["day_of_week"] != float64(6) {
			t.Fatalf("day_of_week not merged: %v", payload)
		}
		if payload["price"] != float64(0) {
			t.Fatalf("price not coerced: %v", payload)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"final_score": 82,
			"verdict":     "HIGH POTENTIAL",
			"attendance":  420,
			"breakdown":   map[string]any{"audience_score": 90},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, zap.NewNop())
	result, err := client.Predict(context.Background(), domain.PredictionRequest{
		City:            "Indore",
		EventType:       "Food Festival",
		SponsorCategory: "Red Bull (Energy Drinks)",
		DayOfWeek:       6,
		Price:           0,
		MarketingBudget: 5000,
		VenueCapacity:   500,
		Temperature:     30,
	})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if result.FinalScore != 82 || result.Verdict != "HIGH POTENTIAL" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Breakdown.AudienceScore != 90 || result.Breakdown.CostScore != 0 {
		t.Fatalf("breakdown defaults wrong: %+v", result.Breakdown)
	}
	if result.Tips != nil {
		t.Fatalf("missing tips should decode to nil slice, got %v", result.Tips)
	}
}

func TestPredictRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"final_score": 55, "verdict": "MODERATE"})
	}))
	defer server.Close()

	client := NewClient(server.URL, zap.NewNop())
	result, err := client.Predict(context.Background(), domain.PredictionRequest{})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if result.FinalScore != 55 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected one retry, got %d calls", calls.Load())
	}
}

func TestPredictDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad payload", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := NewClient(server.URL, zap.NewNop())
	if _, err := client.Predict(context.Background(), domain.PredictionRequest{}); err == nil {
		t.Fatal("expected error for 422 response")
	}
	if calls.Load() != 1 {
		t.Fatalf("4xx must be terminal, got %d calls", calls.Load())
	}
}

func TestCircuitOpensAfterRepeatedFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, zap.NewNop())
	if _, err := client.Predict(context.Background(), domain.PredictionRequest{}); err == nil {
		t.Fatal("expected failure")
	}

	// The retry budget alone exceeds the breaker threshold, so the next
	// call must be refused without reaching the server.
	if _, err := client.Predict(context.Background(), domain.PredictionRequest{}); err == nil {
		t.Fatal("expected circuit-open refusal")
	}
}
