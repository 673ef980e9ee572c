package consumer

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/metrics"
)

// Executor drains run envelopes and executes the attribution pipeline for
// each one. Runs are heavyweight and rare, so they are processed one at a
// time; a second message arriving mid-run simply waits in the channel.
type Executor struct {
	pipeline    PipelineRunner
	idempotency RunClaimer
	log         *zap.Logger
}

// NewExecutor creates a new run executor
func NewExecutor(pipeline PipelineRunner, idempotency RunClaimer, log *zap.Logger) *Executor {
	return &Executor{
		pipeline:    pipeline,
		idempotency: idempotency,
		log:         log,
	}
}

// Start begins processing run envelopes until the input channel closes
func (e *Executor) Start(ctx context.Context, in <-chan *Envelope) {
	for {
		select {
		case <-ctx.Done():
			e.log.Info("Executor shutting down")
			return
		case envelope, ok := <-in:
			if !ok {
				e.log.Info("Executor input channel closed")
				return
			}
			e.process(ctx, envelope)
		}
	}
}

// process executes a single run: claim, execute, ack or nack.
func (e *Executor) process(ctx context.Context, envelope *Envelope) {
	run := *envelope.Run

	claimed, err := e.idempotency.Claim(ctx, run.RunID)
	if err != nil {
		e.log.Error("Failed to claim run, leaving message for retry",
			zap.String("run_id", run.RunID),
			zap.Error(err))
		e.nack(ctx, envelope)
		return
	}

	if !claimed {
		// Duplicate delivery of an already-executed run.
		e.ack(ctx, envelope)
		return
	}

	start := time.Now()
	report, err := e.pipeline.Execute(ctx, run)
	elapsed := time.Since(start)

	if err != nil {
		e.log.Error("Attribution run failed",
			zap.String("run_id", run.RunID),
			zap.String("model", run.Model),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		metrics.RecordRun(run.Model, "failure", elapsed.Seconds())
		e.idempotency.Release(ctx, run.RunID)
		e.nack(ctx, envelope)
		return
	}

	metrics.RecordRun(run.Model, "success", elapsed.Seconds())
	e.log.Info("Attribution run completed",
		zap.String("run_id", report.RunID),
		zap.String("model", string(report.Model)),
		zap.Int("journeys_built", report.JourneysBuilt),
		zap.Int("converting_journeys", report.ConvertingJourneys),
		zap.Int("results_written", report.ResultsWritten),
		zap.Int("weights_written", report.WeightsWritten),
		zap.Int("scores_written", report.ScoresWritten),
		zap.Int("skipped_journeys", report.SkippedJourneys),
		zap.Bool("converged", report.Converged),
		zap.Duration("elapsed", elapsed))
	e.ack(ctx, envelope)
}

func (e *Executor) ack(ctx context.Context, envelope *Envelope) {
	if err := envelope.Ack(ctx); err != nil {
		e.log.Error("Failed to ack envelope",
			zap.String("run_id", envelope.Run.RunID),
			zap.Error(err))
	}
}

func (e *Executor) nack(ctx context.Context, envelope *Envelope) {
	if err := envelope.Nack(ctx); err != nil {
		e.log.Error("Failed to nack envelope",
			zap.String("run_id", envelope.Run.RunID),
			zap.Error(err))
	}
}
