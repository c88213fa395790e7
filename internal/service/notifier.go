package service

import (
	"context"
	"encoding/json"

	"github.com/harir2002/cyber-resilience-Quiz/internal/config"
	"github.com/harir2002/cyber-resilience-Quiz/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisNotifier implements SubmissionNotifier on Redis: the email job goes
// to a worker queue, the live event to a PubSub channel. Both are best
// effort; a Redis outage must never fail a submission.
type RedisNotifier struct {
	rdb *redis.Client
	log zerolog.Logger
}

// NewRedisNotifier creates a new RedisNotifier.
func NewRedisNotifier(rdb *redis.Client, log zerolog.Logger) *RedisNotifier {
	return &RedisNotifier{rdb: rdb, log: log}
}

// EnqueueResultEmail pushes a result email job onto the worker queue.
func (n *RedisNotifier) EnqueueResultEmail(ctx context.Context, job model.ResultEmailJob) {
	raw, err := json.Marshal(job)
	if err != nil {
		n.log.Error().Err(err).Msg("marshal email job")
		return
	}
	if err := n.rdb.RPush(ctx, config.WorkerKey.ResultEmailQueue, raw).Err(); err != nil {
		n.log.Warn().Err(err).
			Str("assessment_id", job.AssessmentID.String()).
			Msg("enqueue result email failed")
	}
}

// PublishSubmission broadcasts a submission event to the live feed channel.
func (n *RedisNotifier) PublishSubmission(ctx context.Context, event model.SubmissionEvent) {
	raw, err := json.Marshal(event)
	if err != nil {
		n.log.Error().Err(err).Msg("marshal submission event")
		return
	}
	if err := n.rdb.Publish(ctx, config.CacheKey.SubmissionsChannel(), raw).Err(); err != nil {
		n.log.Warn().Err(err).
			Str("assessment_id", event.AssessmentID.String()).
			Msg("publish submission event failed")
	}
}
