package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/attribution"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/attribution/markov"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/domain"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/journey"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/metrics"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/repository"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/scoring"
)

// Pipeline executes one full attribution run: load inputs, build journeys,
// assign credit under the requested model, score influencers and persist the
// outputs. It is driven by the worker, one run at a time.
type Pipeline struct {
	repository repository.AttributionRepository
	builder    *journey.Builder
	engine     *attribution.Engine
	calculator *markov.Calculator
	scorer     *scoring.Engine
	log        *zap.Logger
}

// NewPipeline creates a new attribution pipeline
func NewPipeline(
	repo repository.AttributionRepository,
	builder *journey.Builder,
	engine *attribution.Engine,
	calculator *markov.Calculator,
	scorer *scoring.Engine,
	log *zap.Logger,
) *Pipeline {
	return &Pipeline{
		repository: repo,
		builder:    builder,
		engine:     engine,
		calculator: calculator,
		scorer:     scorer,
		log:        log,
	}
}

// Execute runs the full pipeline for one run request. Integrity errors on
// individual journeys skip the journey and continue; infrastructure errors
// abort the run so the message can be retried.
func (p *Pipeline) Execute(ctx context.Context, run domain.RunRequest) (*domain.RunReport, error) {
	model, err := domain.ParseModel(run.Model)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	touchpoints, err := p.repository.LoadTouchpoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load touchpoints: %w", err)
	}
	conversions, err := p.repository.LoadConversions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversions: %w", err)
	}
	influencers, err := p.repository.LoadInfluencers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load influencers: %w", err)
	}
	posts, err := p.repository.LoadPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	journeys, buildIntegrity := p.builder.Build(touchpoints, conversions)
	converting := journey.Converting(journeys)
	for _, ie := range buildIntegrity {
		p.log.Warn("Skipped record during journey building",
			zap.String("run_id", run.RunID),
			zap.String("conversion_id", ie.ConversionID),
			zap.String("reason", ie.Reason))
	}

	report := &domain.RunReport{
		RunID:              run.RunID,
		Model:              model,
		JourneysBuilt:      len(journeys),
		ConvertingJourneys: len(converting),
		Converged:          true,
	}

	p.log.Info("Journeys built",
		zap.String("run_id", run.RunID),
		zap.Int("total", len(journeys)),
		zap.Int("converting", len(converting)))

	var results []domain.AttributionResult
	var integrity []*attribution.DataIntegrityError

	if model == domain.ModelMarkovChain {
		results, integrity, err = p.runMarkov(ctx, journeys, converting, touchpoints, report)
		if err != nil {
			return nil, err
		}
	} else {
		results, integrity, err = p.engine.AssignAll(converting, model)
		if err != nil {
			return nil, fmt.Errorf("failed to assign credit: %w", err)
		}
	}

	report.SkippedJourneys = len(buildIntegrity) + len(integrity)

	written, err := p.repository.InsertAttributionResults(ctx, results)
	if err != nil {
		return nil, fmt.Errorf("failed to persist attribution results: %w", err)
	}
	report.ResultsWritten = written
	metrics.RecordRowsWritten("attribution_results", written)

	scores := p.scorer.Score(influencers, posts, conversions)
	written, err = p.repository.InsertScores(ctx, scores)
	if err != nil {
		return nil, fmt.Errorf("failed to persist influencer scores: %w", err)
	}
	report.ScoresWritten = written
	metrics.RecordRowsWritten("influencer_scores", written)

	metrics.RecordJourneys("converted", len(converting))
	metrics.RecordJourneys("skipped", len(buildIntegrity)+len(integrity))

	report.Duration = time.Since(start)
	return report, nil
}

// runMarkov fits the transition chain on every journey, solves the removal
// effects, persists the channel weight table and distributes credit.
func (p *Pipeline) runMarkov(
	ctx context.Context,
	journeys map[string]domain.Journey,
	converting []domain.Journey,
	touchpoints []domain.Touchpoint,
	report *domain.RunReport,
) ([]domain.AttributionResult, []*attribution.DataIntegrityError, error) {
	chain := markov.NewChain()
	for _, j := range journeys {
		chain.Observe(j)
	}

	weights, err := p.calculator.RemovalEffects(chain, channelUniverse(touchpoints))
	if err != nil {
		if !errors.Is(err, markov.ErrNotConverged) {
			return nil, nil, fmt.Errorf("failed to compute removal effects: %w", err)
		}
		// Approximate weights are still usable; flag the run instead of
		// failing it.
		report.Converged = false
		p.log.Warn("Markov solve did not converge, using approximate weights",
			zap.String("run_id", report.RunID),
			zap.Error(err))
	}

	written, err := p.repository.InsertChannelWeights(ctx, weights)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to persist channel weights: %w", err)
	}
	report.WeightsWritten = written
	metrics.RecordRowsWritten("channel_weights", written)

	results, integrity := p.calculator.Distribute(converting, weights)
	for _, ie := range integrity {
		p.log.Warn("Skipped journey during credit distribution",
			zap.String("customer_id", ie.CustomerID),
			zap.String("conversion_id", ie.ConversionID),
			zap.String("reason", ie.Reason))
	}

	return results, integrity, nil
}

// channelUniverse collects the distinct channels present in the touchpoint
// data, sorted for deterministic output.
func channelUniverse(touchpoints []domain.Touchpoint) []string {
	seen := make(map[string]bool)
	var channels []string
	for _, tp := range touchpoints {
		ch := tp.Channel()
		if !seen[ch] {
			seen[ch] = true
			channels = append(channels, ch)
		}
	}
	sort.Strings(channels)
	return channels
}
