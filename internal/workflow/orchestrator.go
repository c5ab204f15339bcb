package workflow

import (
	"context"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"github.com/sponsorwise/sponsorwise-cli-go/internal/domain"
	"github.com/sponsorwise/sponsorwise-cli-go/internal/util"
	"github.com/sponsorwise/sponsorwise-cli-go/pkg/errors"
	"go.uber.org/zap"
)

// BrandAnalyzer submits a brand profile to the insight service.
type BrandAnalyzer interface {
	AnalyzeBrand(ctx context.Context, profile domain.BrandProfile) (*domain.BrandAnalysis, error)
}

// DealPredictor submits a prediction request to the insight service.
type DealPredictor interface {
	Predict(ctx context.Context, req domain.PredictionRequest) (*domain.PredictionResult, error)
}

// AnalysisCache is an optional read-through cache for brand analyses.
type AnalysisCache interface {
	GetBrandAnalysis(ctx context.Context, profile domain.BrandProfile) (*domain.BrandAnalysis, bool)
	PutBrandAnalysis(ctx context.Context, profile domain.BrandProfile, analysis *domain.BrandAnalysis)
}

// Callbacks deliver submission outcomes back to the interaction surface.
// They run on worker goroutines; the surface serializes its own output.
type Callbacks struct {
	OnBrandResult func(state State)
	OnDealResult  func(state State)
	OnError       func(message string)
}

// Orchestrator owns the request lifecycle of both submissions: local
// validation, pending flags, payload construction, async dispatch, and the
// sequence-fenced commit of each outcome into the store.
type Orchestrator struct {
	store     *Store
	analyzer  BrandAnalyzer
	predictor DealPredictor
	cache     AnalysisCache
	callbacks Callbacks
	workers   *pool.Pool
	logger    *zap.Logger
}

func NewOrchestrator(store *Store, analyzer BrandAnalyzer, predictor DealPredictor, cache AnalysisCache, callbacks Callbacks, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		store:     store,
		analyzer:  analyzer,
		predictor: predictor,
		cache:     cache,
		callbacks: callbacks,
		workers:   pool.New(),
		logger:    logger,
	}
}

// SubmitBrand validates the profile locally, then dispatches the analysis
// request asynchronously. The returned error covers only local refusals
// (incomplete profile, submission already pending); network outcomes arrive
// through the callbacks.
func (o *Orchestrator) SubmitBrand(ctx context.Context) error {
	snap := o.store.Snapshot()
	if !snap.Brand.IsComplete() {
		return errors.NewValidationError("Enter Name and Industry", "brand_profile", snap.Brand)
	}

	seq, err := o.store.BeginBrandSubmission()
	if err != nil {
		return err
	}

	profile := snap.Brand
	requestID := uuid.NewString()

	o.workers.Go(func() {
		o.logger.Info("Submitting brand profile",
			zap.String("request_id", requestID),
			zap.String("company", profile.CompanyName),
		)

		if o.cache != nil {
			if analysis, ok := o.cache.GetBrandAnalysis(ctx, profile); ok {
				o.logger.Debug("Brand analysis served from cache", zap.String("request_id", requestID))
				o.commitBrand(seq, analysis)
				return
			}
		}

		analysis, err := o.analyzer.AnalyzeBrand(ctx, profile)
		if err != nil {
			o.store.FailBrandSubmission(seq)
			o.logger.Error("Brand analysis failed",
				zap.String("request_id", requestID),
				zap.Error(err),
			)
			o.reportError("Brand analysis failed. Check the service and try again.")
			return
		}

		if o.cache != nil {
			o.cache.PutBrandAnalysis(ctx, profile, analysis)
		}
		o.commitBrand(seq, analysis)
	})

	return nil
}

// SubmitDeal clears the visible result and dispatches a prediction request
// built from the latest field values. No validation beyond numeric coercion
// is applied; enum fields are constrained at edit time.
func (o *Orchestrator) SubmitDeal(ctx context.Context) error {
	seq, err := o.store.BeginDealSubmission()
	if err != nil {
		return err
	}

	snap := o.store.Snapshot()
	req := BuildPredictionRequest(snap.Brand, snap.Deal)
	requestID := uuid.NewString()

	o.workers.Go(func() {
		o.logger.Info("Submitting deal parameters",
			zap.String("request_id", requestID),
			zap.String("city", req.City),
			zap.String("event_type", req.EventType),
			zap.Int("day_of_week", req.DayOfWeek),
		)

		result, err := o.predictor.Predict(ctx, req)
		if err != nil {
			o.store.FailDealSubmission(seq)
			o.logger.Error("Prediction failed",
				zap.String("request_id", requestID),
				zap.Error(err),
			)
			o.reportError("Prediction failed. The deal was not scored.")
			return
		}

		if !o.store.CompleteDealSubmission(seq, result) {
			o.logger.Debug("Prediction superseded, result dropped",
				zap.String("request_id", requestID),
			)
			return
		}
		if o.callbacks.OnDealResult != nil {
			o.callbacks.OnDealResult(o.store.Snapshot())
		}
	})

	return nil
}

// Wait blocks until all dispatched submissions have completed.
func (o *Orchestrator) Wait() {
	o.workers.Wait()
}

func (o *Orchestrator) commitBrand(seq uint64, analysis *domain.BrandAnalysis) {
	if !o.store.CompleteBrandSubmission(seq, analysis) {
		return
	}
	if o.callbacks.OnBrandResult != nil {
		o.callbacks.OnBrandResult(o.store.Snapshot())
	}
}

func (o *Orchestrator) reportError(message string) {
	if o.callbacks.OnError != nil {
		o.callbacks.OnError(message)
	}
}

// BuildPredictionRequest merges the deal form with the brand-derived fields
// and coerces every quantity so the wire payload never carries NaN or a
// missing number.
func BuildPredictionRequest(brand domain.BrandProfile, deal domain.DealParameters) domain.PredictionRequest {
	return domain.PredictionRequest{
		City:            deal.City.String(),
		EventType:       deal.EventType.String(),
		SponsorCategory: brand.SponsorCategory(),
		DayOfWeek:       domain.DayOfWeek(deal.Date),
		Price:           util.CoerceFloat(deal.Price),
		MarketingBudget: util.CoerceFloat(deal.MarketingBudget),
		VenueCapacity:   util.CoerceInt(deal.VenueCapacity),
		Temperature:     util.CoerceFloat(deal.Temperature),
		IsRaining:       deal.IsRaining,
	}
}
