package constants

import "time"

var APIConfig = struct {
	DefaultBaseURL string
	RequestTimeout time.Duration
}{
	DefaultBaseURL: "http://127.0.0.1:8000",
	RequestTimeout: 15 * time.Second,
}

var RetryConfig = struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Jitter      time.Duration
}{
	MaxAttempts: 3,
	BaseDelay:   500 * time.Millisecond,
	Jitter:      250 * time.Millisecond,
}

var CircuitBreakerConfig = struct {
	FailureThreshold int
	ResetTimeout     time.Duration
}{
	FailureThreshold: 3,
	ResetTimeout:     30 * time.Second,
}

var CacheTTL = struct {
	BrandAnalysis time.Duration
}{
	BrandAnalysis: 30 * time.Minute,
}

// ScoreBands holds the display thresholds for the headline score.
// Low is everything under LowCeiling, medium runs up to MediumCeiling.
var ScoreBands = struct {
	LowCeiling    float64
	MediumCeiling float64
}{
	LowCeiling:    45,
	MediumCeiling: 75,
}

var GaugeConfig = struct {
	Radius float64
}{
	Radius: 60,
}

var InputLimits = struct {
	MaxFieldLength int
}{
	MaxFieldLength: 200,
}
