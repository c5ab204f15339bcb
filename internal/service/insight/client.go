package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"time"

	"github.com/sponsorwise/sponsorwise-cli-go/internal/constants"
	"github.com/sponsorwise/sponsorwise-cli-go/internal/domain"
	"github.com/sponsorwise/sponsorwise-cli-go/internal/util"
	"github.com/sponsorwise/sponsorwise-cli-go/pkg/errors"
	"go.uber.org/zap"
)

// Client talks to the SponsorWise insight service. Transport and 5xx
// failures are retried with exponential backoff and trip a circuit breaker;
// 4xx responses are terminal.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *util.CircuitBreaker
	logger     *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: constants.APIConfig.RequestTimeout,
		},
		breaker: util.NewCircuitBreaker(
			constants.CircuitBreakerConfig.FailureThreshold,
			constants.CircuitBreakerConfig.ResetTimeout,
			logger,
		),
		logger: logger,
	}
}

// AnalyzeBrand submits a brand profile to /analyze-brand.
func (c *Client) AnalyzeBrand(ctx context.Context, profile domain.BrandProfile) (*domain.BrandAnalysis, error) {
	var analysis domain.BrandAnalysis
	if err := c.doRequest(ctx, "/analyze-brand", profile, &analysis); err != nil {
		c.logger.Error("Brand analysis request failed",
			zap.String("company", profile.CompanyName),
			zap.Error(err),
		)
		return nil, err
	}
	return &analysis, nil
}

// Predict submits a prediction request to /predict.
func (c *Client) Predict(ctx context.Context, req domain.PredictionRequest) (*domain.PredictionResult, error) {
	var result domain.PredictionResult
	if err := c.doRequest(ctx, "/predict", req, &result); err != nil {
		c.logger.Error("Prediction request failed",
			zap.String("city", req.City),
			zap.String("event_type", req.EventType),
			zap.Error(err),
		)
		return nil, err
	}
	return &result, nil
}

// Ping reports whether the service answers at all. Used at startup for a
// friendlier message than a failed first submission.
func (c *Client) Ping(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/docs", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode < 500
}

func (c *Client) doRequest(ctx context.Context, path string, reqBody, respBody any) error {
	if !c.breaker.CanExecute() {
		return errors.NewAPIError("insight service circuit open", 503, map[string]any{
			"path": path,
		})
	}

	url := c.baseURL + path
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return errors.NewAPIError("failed to marshal request", 400, map[string]any{
			"url": url,
		}).WithCause(err)
	}

	var lastErr error
	for attempt := 0; attempt < constants.RetryConfig.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := c.computeDelay(attempt - 1)
			c.logger.Warn("Retrying insight request",
				zap.String("path", path),
				zap.Int("attempt", attempt+1),
				zap.Duration("delay", delay),
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
		if err != nil {
			return errors.NewAPIError("failed to create request", 500, map[string]any{
				"url": url,
			}).WithCause(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = errors.NewAPIError("request failed", 500, map[string]any{
				"url": url,
			}).WithCause(err)
			c.breaker.RecordFailure()
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = errors.NewAPIError("failed to read response", 500, map[string]any{
				"url": url,
			}).WithCause(readErr)
			c.breaker.RecordFailure()
			continue
		}

		if resp.StatusCode >= 500 {
			lastErr = errors.NewAPIError(fmt.Sprintf("insight service error: %s", resp.Status), resp.StatusCode, map[string]any{
				"url":  url,
				"body": string(body),
			})
			c.breaker.RecordFailure()
			continue
		}

		if resp.StatusCode >= 400 {
			c.breaker.RecordSuccess()
			return errors.NewAPIError(fmt.Sprintf("insight request rejected: %s", resp.Status), resp.StatusCode, map[string]any{
				"url":  url,
				"body": string(body),
			})
		}

		if respBody != nil {
			if err := json.Unmarshal(body, respBody); err != nil {
				c.breaker.RecordSuccess()
				return errors.NewAPIError("failed to decode response", 500, map[string]any{
					"url": url,
				}).WithCause(err)
			}
		}

		c.breaker.RecordSuccess()
		return nil
	}

	return lastErr
}

func (c *Client) computeDelay(attempt int) time.Duration {
	base := constants.RetryConfig.BaseDelay * time.Duration(math.Pow(2, float64(attempt)))
	jitter := time.Duration(rand.Float64() * float64(constants.RetryConfig.Jitter))
	return base + jitter
}
