package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/harir2002/cyber-resilience-Quiz/internal/config"
	"github.com/harir2002/cyber-resilience-Quiz/internal/model"
	"github.com/harir2002/cyber-resilience-Quiz/internal/scoring"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"
)

const (
	EmailPollTimeout  = 1 * time.Second
	EmailSendTimeout  = 20 * time.Second
	EmailMaxAttempts  = 3
	EmailRequeueDelay = 5 * time.Second
)

// EmailWorker drains the result email queue and sends the assessment
// report to the company contact.
type EmailWorker struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
	cfg  *config.Config
	log  zerolog.Logger
}

func NewEmailWorker(pool *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *EmailWorker {
	return &EmailWorker{
		pool: pool,
		rdb:  rdb,
		cfg:  cfg,
		log:  log.With().Str("component", "email_worker").Logger(),
	}
}

// ----------------------------------------------------------------
// Worker loop
// ----------------------------------------------------------------

func (w *EmailWorker) Start(ctx context.Context) {
	w.log.Info().Msg("EmailWorker started")

	if w.cfg.SMTPUser == "" {
		w.log.Warn().Msg("EMAIL_USER not set, result emails will be dropped")
	}

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Shutdown requested")
			return

		default:
			item, err := w.rdb.BLPop(ctx, EmailPollTimeout, config.WorkerKey.ResultEmailQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}

			if len(item) < 2 {
				continue
			}

			var job model.ResultEmailJob
			if err := json.Unmarshal([]byte(item[1]), &job); err != nil {
				w.log.Error().Err(err).Msg("Invalid JSON payload")
				continue
			}

			w.process(ctx, job)
		}
	}
}

func (w *EmailWorker) process(ctx context.Context, job model.ResultEmailJob) {
	if w.cfg.SMTPUser == "" {
		w.log.Debug().
			Str("assessment_id", job.AssessmentID.String()).
			Msg("email delivery disabled, dropping job")
		return
	}

	if err := w.send(ctx, job); err != nil {
		w.log.Error().Err(err).
			Str("assessment_id", job.AssessmentID.String()).
			Int("attempts", job.Attempts).
			Msg("send failed")
		w.requeue(ctx, job)
		return
	}

	w.log.Info().
		Str("assessment_id", job.AssessmentID.String()).
		Str("to", job.ContactEmail).
		Msg("result email sent")
}

// requeue pushes the job back with an incremented attempt counter, giving
// up after EmailMaxAttempts. The retry delay is interruptible so a failed
// send never stalls shutdown; on cancellation the job is pushed back
// immediately instead of being lost.
func (w *EmailWorker) requeue(ctx context.Context, job model.ResultEmailJob) {
	job.Attempts++
	if job.Attempts >= EmailMaxAttempts {
		w.log.Error().
			Str("assessment_id", job.AssessmentID.String()).
			Msg("giving up on result email")
		return
	}

	timer := time.NewTimer(EmailRequeueDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}

	raw, _ := json.Marshal(job)
	if err := w.rdb.RPush(context.WithoutCancel(ctx), config.WorkerKey.ResultEmailQueue, raw).Err(); err != nil {
		w.log.Error().Err(err).Msg("requeue failed")
	}
}

// ----------------------------------------------------------------
// Rendering and delivery
// ----------------------------------------------------------------

func (w *EmailWorker) send(ctx context.Context, job model.ResultEmailJob) error {
	body, err := w.renderBody(ctx, job)
	if err != nil {
		return fmt.Errorf("render body: %w", err)
	}

	msg := mail.NewMsg()
	from := w.cfg.SMTPFrom
	if from == "" {
		from = w.cfg.SMTPUser
	}
	if err := msg.From(from); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(job.ContactEmail); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	msg.Subject(fmt.Sprintf("Assessment Summary - %s", job.CompanyName))
	msg.SetBodyString(mail.TypeTextHTML, body)

	opts := []mail.Option{
		mail.WithPort(w.cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(w.cfg.SMTPUser),
		mail.WithPassword(w.cfg.SMTPPass),
		mail.WithTimeout(EmailSendTimeout),
	}
	if w.cfg.SMTPPort == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(w.cfg.SMTPHost, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	return client.DialAndSendWithContext(ctx, msg)
}

// renderBody loads the stored score breakdown for the assessment and
// renders the question and answer report.
func (w *EmailWorker) renderBody(ctx context.Context, job model.ResultEmailJob) (string, error) {
	var raw json.RawMessage
	err := w.pool.QueryRow(ctx,
		`SELECT result FROM assessments WHERE id = $1`, job.AssessmentID,
	).Scan(&raw)
	if err != nil {
		return "", fmt.Errorf("load result: %w", err)
	}

	var result scoring.ScoreResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("decode result: %w", err)
	}

	type emailRow struct {
		Number   int
		Question string
		Answer   string
	}

	rows := make([]emailRow, 0, len(result.PerQuestion))
	for i, qs := range result.PerQuestion {
		rows = append(rows, emailRow{
			Number:   i + 1,
			Question: qs.Text,
			Answer:   formatAnswer(qs.UserAnswer),
		})
	}

	data := struct {
		CompanyName string
		Score       string
		Percentage  string
		Level       string
		Summary     string
		Rows        []emailRow
		Year        int
	}{
		CompanyName: job.CompanyName,
		Score:       fmt.Sprintf("%d/%d", job.TotalScore, job.MaxScore),
		Percentage:  fmt.Sprintf("%.1f%%", job.Percentage),
		Level:       job.MaturityLabel,
		Summary:     job.Summary,
		Rows:        rows,
		Year:        time.Now().Year(),
	}

	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatAnswer flattens a normalized answer into display text.
func formatAnswer(answer any) string {
	switch v := answer.(type) {
	case string:
		if v == "" {
			return "No answer provided"
		}
		return v
	case []string:
		return strings.Join(v, ", ")
	case []any:
		labels := make([]string, 0, len(v))
		for _, item := range v {
			if label, ok := item.(string); ok {
				labels = append(labels, label)
			}
		}
		if len(labels) > 0 {
			return strings.Join(labels, ", ")
		}
	}
	return "No answer provided"
}

var emailTemplate = template.Must(template.New("result_email").Parse(`<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
  .container { max-width: 800px; margin: 0 auto; border: 1px solid #ddd; border-radius: 8px; overflow: hidden; }
  .header { background-color: #000; color: #fff; padding: 20px; text-align: center; }
  .header h1 { margin: 0; color: #e7000b; }
  .content { padding: 20px; }
  .headline { background-color: #f9f9f9; padding: 15px; border-radius: 8px; margin-bottom: 20px; }
  .qa-box { background-color: #f9f9f9; padding: 15px; border-radius: 8px; margin-bottom: 20px; border-left: 5px solid #e7000b; }
  .question { font-size: 16px; font-weight: bold; margin-bottom: 10px; color: #000; }
  .answer { background-color: #fff; padding: 10px; border: 1px solid #ddd; border-radius: 4px; color: #333; }
  .footer { background-color: #f1f1f1; padding: 15px; text-align: center; font-size: 12px; color: #666; }
</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Assessment Summary</h1>
      <p>SBA Info Solutions</p>
    </div>
    <div class="content">
      <p>Dear {{.CompanyName}},</p>
      <p>Thank you for completing the Cyber Resilience Assessment. Below is a summary of your responses.</p>
      <div class="headline">
        <p><strong>Score:</strong> {{.Score}} ({{.Percentage}})</p>
        <p><strong>Maturity Level:</strong> {{.Level}}</p>
        <p>{{.Summary}}</p>
      </div>
      {{range .Rows}}
      <div class="qa-box">
        <div class="question">{{.Number}}. {{.Question}}</div>
        <div class="answer">{{.Answer}}</div>
      </div>
      {{end}}
      <p>For further discussion, please contact our security experts.</p>
    </div>
    <div class="footer">
      <p>&copy; {{.Year}} SBA Info Solutions. All rights reserved.</p>
      <p>www.sbainfo.in</p>
    </div>
  </div>
</body>
</html>
`))
