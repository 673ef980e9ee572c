package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/config"
)

const runKeyPrefix = "attribution:run:"

// Idempotency tracks which run IDs have already been claimed, so a redelivered
// queue message does not recompute and rewrite a finished run.
type Idempotency struct {
	client *redis.Client
	config config.Valkey
	log    *zap.Logger
}

// NewIdempotency creates the idempotency cache and verifies connectivity.
func NewIdempotency(ctx context.Context, valkeyConfig config.Valkey, log *zap.Logger) (*Idempotency, error) {
	client := redis.NewClient(&redis.Options{
		Addr: net.JoinHostPort(valkeyConfig.Host, valkeyConfig.Port),
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping valkey: %w", err)
	}

	log.Info("Valkey client created",
		zap.String("host", valkeyConfig.Host),
		zap.String("port", valkeyConfig.Port),
		zap.Bool("idempotency_enabled", valkeyConfig.IdempotencyEnabled))

	return &Idempotency{
		client: client,
		config: valkeyConfig,
		log:    log,
	}, nil
}

// Claim attempts to claim a run ID. It returns true when this worker is the
// first to see the run and should execute it. When the cache is unreachable
// the behavior follows IdempotencyFailOpen: fail-open executes the run
// (risking a duplicate), fail-closed surfaces the error so the message is
// retried later.
func (i *Idempotency) Claim(ctx context.Context, runID string) (bool, error) {
	if !i.config.IdempotencyEnabled {
		return true, nil
	}

	ttl := time.Duration(i.config.IdempotencyTTLSec) * time.Second
	claimed, err := i.client.SetNX(ctx, runKeyPrefix+runID, time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		if i.config.IdempotencyFailOpen {
			i.log.Warn("Idempotency check failed, proceeding fail-open",
				zap.String("run_id", runID),
				zap.Error(err))
			return true, nil
		}
		return false, fmt.Errorf("failed to claim run %s: %w", runID, err)
	}

	if !claimed {
		i.log.Info("Run already claimed, skipping",
			zap.String("run_id", runID))
	}

	return claimed, nil
}

// Release drops the claim for a run ID so a failed run can be retried on
// redelivery. Errors are logged, not returned; a stale claim expires with the
// TTL anyway.
func (i *Idempotency) Release(ctx context.Context, runID string) {
	if !i.config.IdempotencyEnabled {
		return
	}

	if err := i.client.Del(ctx, runKeyPrefix+runID).Err(); err != nil {
		i.log.Warn("Failed to release run claim",
			zap.String("run_id", runID),
			zap.Error(err))
	}
}

// Close closes the underlying connection.
func (i *Idempotency) Close() error {
	return i.client.Close()
}
