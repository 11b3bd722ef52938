package leads

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/akomcomputer/shopsuite-backend/internal/store"
	apperrors "github.com/akomcomputer/shopsuite-backend/pkg/errors"
	"github.com/akomcomputer/shopsuite-backend/pkg/logger"
	"github.com/akomcomputer/shopsuite-backend/pkg/metrics"
	"github.com/akomcomputer/shopsuite-backend/pkg/models"
)

// Service orchestrates the two-phase lead scoring flow: build the prompt
// from the store, call the external scorer, apply the normalized result.
type Service interface {
	ScoreLead(ctx context.Context, leadID string) (*models.Lead, error)
}

type service struct {
	store   *store.Store
	scorer  Scorer
	log     *logger.Logger
	metrics *metrics.StoreMetrics
}

// NewService wires the scoring orchestration. Scorer may be nil, in which
// case every ScoreLead call degrades to EXTERNAL_SERVICE_ERROR without
// touching the lead.
func NewService(st *store.Store, scorer Scorer, log *logger.Logger, m *metrics.StoreMetrics) (Service, error) {
	if st == nil {
		return nil, fmt.Errorf("store is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{
		store:   st,
		scorer:  scorer,
		log:     log,
		metrics: m,
	}, nil
}

// scorePayload matches the loosely-shaped JSON the model returns. Either
// price field may carry the estimate; notes and summary are synonyms.
type scorePayload struct {
	PriceEstimate *float64 `json:"price_estimate"`
	Price         *float64 `json:"price"`
	TrustScore    *float64 `json:"trust_score"`
	Notes         string   `json:"notes"`
	Summary       string   `json:"summary"`
}

func (s *service) ScoreLead(ctx context.Context, leadID string) (*models.Lead, error) {
	if s.scorer == nil {
		return nil, apperrors.New(apperrors.CodeExternal, "lead scoring is not configured")
	}

	prompt, err := s.store.RequestScorePrompt(leadID)
	if err != nil {
		return nil, err
	}

	model := s.scorer.Model()
	started := time.Now()
	payload, err := s.scorer.Score(ctx, prompt)
	s.metrics.ObserveScorerDuration(model, time.Since(started))
	if err != nil {
		s.metrics.IncScorerFailure(model)
		s.log.Error(ctx, "lead scoring call failed", err)
		return nil, apperrors.Wrap(apperrors.CodeExternal, err, "scoring service unavailable")
	}

	result, err := parseScorePayload(payload)
	if err != nil {
		s.metrics.IncScorerFailure(model)
		s.log.Error(ctx, "lead scoring response unreadable", err)
		return nil, apperrors.Wrap(apperrors.CodeExternal, err, "scoring response unreadable")
	}

	s.store.ApplyScoreResult(ctx, leadID, result)

	lead, ok := s.store.LeadByID(leadID)
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, "lead not found")
	}
	return &lead, nil
}

func parseScorePayload(payload []byte) (store.ScoreResult, error) {
	var parsed scorePayload
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return store.ScoreResult{}, err
	}

	result := store.ScoreResult{}
	switch {
	case parsed.PriceEstimate != nil:
		result.PriceEstimate = decimal.NewFromFloat(*parsed.PriceEstimate)
	case parsed.Price != nil:
		result.PriceEstimate = decimal.NewFromFloat(*parsed.Price)
	default:
		result.PriceEstimate = decimal.Zero
	}
	if parsed.TrustScore != nil {
		result.TrustScore = int(*parsed.TrustScore)
	}
	result.Notes = parsed.Notes
	if result.Notes == "" {
		result.Notes = parsed.Summary
	}
	return result, nil
}
