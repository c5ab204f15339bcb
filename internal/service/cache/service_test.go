package cache

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/sponsorwise/sponsorwise-cli-go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	hostPort := strings.Split(mr.Addr(), ":")
	port, err := strconv.Atoi(hostPort[1])
	require.NoError(t, err)

	svc, err := NewService(Config{Host: hostPort[0], Port: port}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	return svc, mr
}

func TestBrandAnalysisRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	profile := domain.BrandProfile{CompanyName: "Red Bull", Industry: "Energy Drinks"}

	_, ok := svc.GetBrandAnalysis(ctx, profile)
	assert.False(t, ok, "expected miss on empty cache")

	svc.PutBrandAnalysis(ctx, profile, &domain.BrandAnalysis{
		Persona:           "Challenger",
		StrategyStatement: "Maximize visibility.",
	})

	analysis, ok := svc.GetBrandAnalysis(ctx, profile)
	require.True(t, ok)
	assert.Equal(t, "Challenger", analysis.Persona)
	assert.Equal(t, "Maximize visibility.", analysis.StrategyStatement)
}

func TestBrandAnalysisKeyIsCaseInsensitive(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	svc.PutBrandAnalysis(ctx,
		domain.BrandProfile{CompanyName: "Red Bull", Industry: "Energy Drinks"},
		&domain.BrandAnalysis{Persona: "Challenger"},
	)

	analysis, ok := svc.GetBrandAnalysis(ctx,
		domain.BrandProfile{CompanyName: "  red bull ", Industry: "ENERGY DRINKS"},
	)
	require.True(t, ok)
	assert.Equal(t, "Challenger", analysis.Persona)
}

func TestExpiredEntryIsAMiss(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	profile := domain.BrandProfile{CompanyName: "Zomato", Industry: "Food Delivery"}
	svc.PutBrandAnalysis(ctx, profile, &domain.BrandAnalysis{Persona: "Connector"})

	mr.FastForward(2 * time.Hour)

	_, ok := svc.GetBrandAnalysis(ctx, profile)
	assert.False(t, ok)
}

func TestCorruptEntryFallsThrough(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	profile := domain.BrandProfile{CompanyName: "Acme", Industry: "Anvils"}
	require.NoError(t, mr.Set(brandAnalysisKey(profile), "{not json"))

	_, ok := svc.GetBrandAnalysis(ctx, profile)
	assert.False(t, ok, "corrupt entries must read as misses")
}
