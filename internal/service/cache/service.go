package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sponsorwise/sponsorwise-cli-go/internal/constants"
	"github.com/sponsorwise/sponsorwise-cli-go/internal/domain"
	"github.com/sponsorwise/sponsorwise-cli-go/pkg/errors"
	"go.uber.org/zap"
)

const brandAnalysisKeyPrefix = "sponsorwise:brand_analysis:"

type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Service is a Redis-backed read-through cache for brand analyses. Analysis
// of the same brand is deterministic upstream and slow, so repeated
// profile edits of the same company resolve instantly. Workflow state is
// never stored here.
type Service struct {
	client *redis.Client
	logger *zap.Logger
}

func NewService(cfg Config, logger *zap.Logger) (*Service, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.NewCacheError("failed to connect to Redis", "ping", "", err)
	}

	logger.Info("Redis connected",
		zap.String("addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		zap.Int("db", cfg.DB),
	)

	return &Service{
		client: client,
		logger: logger,
	}, nil
}

// GetBrandAnalysis looks up a cached analysis. Misses and cache failures
// both report false; the caller falls through to the live service.
func (s *Service) GetBrandAnalysis(ctx context.Context, profile domain.BrandProfile) (*domain.BrandAnalysis, bool) {
	key := brandAnalysisKey(profile)

	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		s.logger.Warn("Cache get failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	var analysis domain.BrandAnalysis
	if err := json.Unmarshal([]byte(value), &analysis); err != nil {
		s.logger.Warn("Cache unmarshal failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &analysis, true
}

// PutBrandAnalysis stores an analysis with the configured TTL. Failures are
// logged and swallowed; caching is best effort.
func (s *Service) PutBrandAnalysis(ctx context.Context, profile domain.BrandProfile, analysis *domain.BrandAnalysis) {
	if analysis == nil {
		return
	}
	key := brandAnalysisKey(profile)

	jsonData, err := json.Marshal(analysis)
	if err != nil {
		s.logger.Warn("Cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := s.client.Set(ctx, key, jsonData, constants.CacheTTL.BrandAnalysis).Err(); err != nil {
		s.logger.Warn("Cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *Service) Close() error {
	return s.client.Close()
}

func brandAnalysisKey(profile domain.BrandProfile) string {
	company := strings.ToLower(strings.TrimSpace(profile.CompanyName))
	industry := strings.ToLower(strings.TrimSpace(profile.Industry))
	return brandAnalysisKeyPrefix + company + "|" + industry
}
