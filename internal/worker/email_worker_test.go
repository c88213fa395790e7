package worker

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/harir2002/cyber-resilience-Quiz/internal/config"
	"github.com/harir2002/cyber-resilience-Quiz/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAnswer(t *testing.T) {
	assert.Equal(t, "Minutes", formatAnswer("Minutes"))
	assert.Equal(t, "No answer provided", formatAnswer(""))
	assert.Equal(t, "No answer provided", formatAnswer(nil))
	assert.Equal(t, "A, B", formatAnswer([]string{"A", "B"}))
	assert.Equal(t, "A, B", formatAnswer([]any{"A", "B"}))
	assert.Equal(t, "No answer provided", formatAnswer([]any{1, 2}))
}

func TestRequeueGivesUpAtAttemptCap(t *testing.T) {
	// A nil redis client would panic on RPush, so reaching the cap must
	// return before any queue access.
	w := NewEmailWorker(nil, nil, &config.Config{}, zerolog.Nop())

	job := model.ResultEmailJob{Attempts: EmailMaxAttempts - 1}
	w.requeue(context.Background(), job)
}

func TestRequeueDoesNotBlockOnCancelledContext(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})
	defer rdb.Close()

	w := NewEmailWorker(nil, rdb, &config.Config{}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	w.requeue(ctx, model.ResultEmailJob{Attempts: 0})

	// The retry delay must be skipped once the context is cancelled.
	assert.Less(t, time.Since(start), EmailRequeueDelay)
}

func TestEmailTemplateRenders(t *testing.T) {
	var buf strings.Builder
	err := emailTemplate.Execute(&buf, struct {
		CompanyName string
		Score       string
		Percentage  string
		Level       string
		Summary     string
		Rows        []struct {
			Number   int
			Question string
			Answer   string
		}
		Year int
	}{
		CompanyName: "Acme <Corp>",
		Score:       "24/48",
		Percentage:  "50.0%",
		Level:       "RISK-INFORMED",
		Summary:     "Solid foundation.",
		Rows: []struct {
			Number   int
			Question string
			Answer   string
		}{
			{Number: 1, Question: "What is your RTO?", Answer: "Hours"},
		},
		Year: 2026,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "24/48")
	assert.Contains(t, out, "RISK-INFORMED")
	assert.Contains(t, out, "What is your RTO?")
	// HTML escaping must be applied to user-controlled fields.
	assert.Contains(t, out, "Acme &lt;Corp&gt;")
	assert.NotContains(t, out, "Acme <Corp>")
}
