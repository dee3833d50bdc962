package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const dlqSuffix = ":dlq"

// DLQEntry wraps a job that could not be processed, with enough context
// to replay it by hand.
type DLQEntry struct {
	Queue    string          `json:"queue"`
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Error    string          `json:"error"`
	Attempts int             `json:"attempts"`
	FailedAt time.Time       `json:"failed_at"`
}

// SendToDLQ parks an unprocessable job on <queue>:dlq. Errors are logged
// and swallowed: losing a dead letter must never crash a worker.
func SendToDLQ(ctx context.Context, rdb *redis.Client, queue, jobType string, payload json.RawMessage, errMsg string, attempts int) {
	entry := DLQEntry{
		Queue:    queue,
		Type:     jobType,
		Payload:  payload,
		Error:    errMsg,
		Attempts: attempts,
		FailedAt: time.Now(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("failed to marshal DLQ entry")
		return
	}
	if err := rdb.LPush(ctx, queue+dlqSuffix, data).Err(); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("failed to push DLQ entry")
	}
}
