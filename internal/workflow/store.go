package workflow

import (
	"errors"
	"sync"

	"github.com/sponsorwise/sponsorwise-cli-go/internal/domain"
	"go.uber.org/zap"
)

// Step identifies the active stage of the two-step workflow.
type Step int

const (
	StepBrandInput Step = 1
	StepDealInput  Step = 2
)

var (
	ErrWrongStep          = errors.New("action not available in the current step")
	ErrSubmissionInFlight = errors.New("a submission for this step is already in flight")
	ErrUnknownField       = errors.New("unknown field")
	ErrInvalidOption      = errors.New("value is not one of the allowed options")
)

// State is a point-in-time snapshot of the workflow. Analysis and Result are
// treated as immutable once stored; snapshots may share them.
type State struct {
	Step         Step
	Brand        domain.BrandProfile
	Analysis     *domain.BrandAnalysis
	Deal         domain.DealParameters
	Result       *domain.PredictionResult
	BrandPending bool
	DealPending  bool
}

// Store is the explicit state container for the workflow. Every mutation
// goes through a named action method; concurrent completions are fenced by
// per-step submission sequence numbers so only the latest dispatched
// submission may commit its outcome.
type Store struct {
	mu       sync.Mutex
	state    State
	brandSeq uint64
	dealSeq  uint64
	logger   *zap.Logger
}

func NewStore(logger *zap.Logger) *Store {
	return &Store{
		state: State{
			Step: StepBrandInput,
			Deal: domain.DefaultDealParameters(),
		},
		logger: logger,
	}
}

// Snapshot returns a copy of the current state for rendering.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// EditBrandField mutates one brand profile field. Brand fields are only
// editable in step 1; step 2 shows them read-only until ResetToBrandEdit.
func (s *Store) EditBrandField(field BrandField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Step != StepBrandInput {
		return ErrWrongStep
	}

	switch field {
	case BrandFieldCompanyName:
		s.state.Brand.CompanyName = value
	case BrandFieldIndustry:
		s.state.Brand.Industry = value
	default:
		return ErrUnknownField
	}
	return nil
}

// EditDealField mutates one deal parameter. The deal form stays editable
// while a prediction is in flight; enum fields validate against the option
// list, quantity fields accept any raw value (coerced at request build).
func (s *Store) EditDealField(field DealField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case DealFieldCity:
		city := domain.City(value)
		if !city.IsValid() {
			return ErrInvalidOption
		}
		s.state.Deal.City = city
	case DealFieldEventType:
		eventType := domain.EventType(value)
		if !eventType.IsValid() {
			return ErrInvalidOption
		}
		s.state.Deal.EventType = eventType
	case DealFieldDate:
		s.state.Deal.Date = value
	case DealFieldPrice:
		s.state.Deal.Price = value
	case DealFieldMarketingBudget:
		s.state.Deal.MarketingBudget = value
	case DealFieldVenueCapacity:
		s.state.Deal.VenueCapacity = value
	case DealFieldTemperature:
		s.state.Deal.Temperature = value
	case DealFieldIsRaining:
		if value == "1" || value == "true" || value == "yes" {
			s.state.Deal.IsRaining = 1
		} else {
			s.state.Deal.IsRaining = 0
		}
	default:
		return ErrUnknownField
	}
	return nil
}

// BeginBrandSubmission marks the brand submission pending and returns the
// sequence number the eventual completion must present.
func (s *Store) BeginBrandSubmission() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Step != StepBrandInput {
		return 0, ErrWrongStep
	}
	if s.state.BrandPending {
		return 0, ErrSubmissionInFlight
	}

	s.brandSeq++
	s.state.BrandPending = true
	return s.brandSeq, nil
}

// CompleteBrandSubmission stores the analysis and advances to step 2.
// A stale sequence number is discarded and reported false.
func (s *Store) CompleteBrandSubmission(seq uint64, analysis *domain.BrandAnalysis) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.brandSeq {
		s.logger.Debug("Discarding stale brand analysis",
			zap.Uint64("seq", seq),
			zap.Uint64("current", s.brandSeq),
		)
		return false
	}

	s.state.BrandPending = false
	s.state.Analysis = analysis
	s.state.Step = StepDealInput
	return true
}

// FailBrandSubmission clears the pending flag; everything else is left as
// it was so the user can retry.
func (s *Store) FailBrandSubmission(seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq == s.brandSeq {
		s.state.BrandPending = false
	}
}

// BeginDealSubmission marks the deal submission pending and clears any
// prior result immediately so a stale report is never shown while a new
// prediction is being computed.
func (s *Store) BeginDealSubmission() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Step != StepDealInput {
		return 0, ErrWrongStep
	}
	if s.state.DealPending {
		return 0, ErrSubmissionInFlight
	}

	s.dealSeq++
	s.state.DealPending = true
	s.state.Result = nil
	return s.dealSeq, nil
}

// CompleteDealSubmission stores the prediction result. Completions that
// carry a stale sequence, or that land after the workflow left step 2, are
// discarded.
func (s *Store) CompleteDealSubmission(seq uint64, result *domain.PredictionResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.dealSeq || s.state.Step != StepDealInput {
		s.logger.Debug("Discarding stale prediction result",
			zap.Uint64("seq", seq),
			zap.Uint64("current", s.dealSeq),
		)
		return false
	}

	s.state.DealPending = false
	s.state.Result = result
	return true
}

// FailDealSubmission clears the pending flag, leaving the empty state
// visible.
func (s *Store) FailDealSubmission(seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq == s.dealSeq {
		s.state.DealPending = false
	}
}

// ResetToBrandEdit returns to step 1 so the brand can be corrected. The
// analysis and any prediction result are discarded, the last-edited brand
// fields are preserved, and any in-flight deal submission is invalidated.
func (s *Store) ResetToBrandEdit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Step != StepDealInput {
		return ErrWrongStep
	}

	s.dealSeq++
	s.state.Step = StepBrandInput
	s.state.Analysis = nil
	s.state.Result = nil
	s.state.DealPending = false
	return nil
}
