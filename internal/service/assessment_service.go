package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/harir2002/cyber-resilience-Quiz/internal/model"
	"github.com/harir2002/cyber-resilience-Quiz/internal/questionnaire"
	"github.com/harir2002/cyber-resilience-Quiz/internal/response"
	"github.com/harir2002/cyber-resilience-Quiz/internal/scoring"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Assessment lifecycle errors.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadySubmitted = errors.New("assessment already submitted")
	ErrEmptyResponses   = errors.New("no responses provided or saved")
	ErrUnknownQuestion  = errors.New("unknown question id")
)

// CompanyStore is the persistence surface the service needs for companies.
type CompanyStore interface {
	Create(ctx context.Context, c *model.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	Count(ctx context.Context) (int, error)
}

// AssessmentStore is the persistence surface for assessments.
type AssessmentStore interface {
	Create(ctx context.Context, a *model.Assessment) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Assessment, error)
	Complete(ctx context.Context, id uuid.UUID, totalScore, maxScore int, percentage float64, maturityLevel int, maturityLabel string, result json.RawMessage) (time.Time, error)
	List(ctx context.Context, page, perPage int, completedOnly bool) ([]model.AssessmentListItem, int64, error)
	Stats(ctx context.Context) (*model.Stats, error)
}

// ResponseStore is the persistence surface for saved answers.
type ResponseStore interface {
	SaveBatch(ctx context.Context, assessmentID uuid.UUID, payloads []model.QuestionResponsePayload) error
	ListByAssessment(ctx context.Context, assessmentID uuid.UUID) ([]model.ResponseRecord, error)
	AnswerMap(ctx context.Context, assessmentID uuid.UUID) (map[string]any, error)
}

// SubmissionNotifier fans out side effects of a submission: the result
// email job and the live dashboard event. Implemented on Redis; failures
// are logged by the implementation and never fail the submission.
type SubmissionNotifier interface {
	EnqueueResultEmail(ctx context.Context, job model.ResultEmailJob)
	PublishSubmission(ctx context.Context, event model.SubmissionEvent)
}

// AssessmentResult pairs the stored assessment with its company and the
// full scored breakdown.
type AssessmentResult struct {
	Assessment *model.Assessment      `json:"assessment"`
	Company    *model.Company         `json:"company"`
	Result     *scoring.ScoreResult   `json:"result,omitempty"`
	Summary    *scoring.ResultSummary `json:"summary,omitempty"`
}

// AssessmentService orchestrates the assessment lifecycle: company intake,
// incremental saves, submission scoring, and reporting reads.
type AssessmentService struct {
	schema      *questionnaire.Schema
	scorer      *scoring.Scorer
	companies   CompanyStore
	assessments AssessmentStore
	responses   ResponseStore
	notifier    SubmissionNotifier
	log         zerolog.Logger
}

// NewAssessmentService creates a new AssessmentService.
func NewAssessmentService(
	schema *questionnaire.Schema,
	companies CompanyStore,
	assessments AssessmentStore,
	responses ResponseStore,
	notifier SubmissionNotifier,
	log zerolog.Logger,
) *AssessmentService {
	return &AssessmentService{
		schema:      schema,
		scorer:      scoring.NewScorer(schema),
		companies:   companies,
		assessments: assessments,
		responses:   responses,
		notifier:    notifier,
		log:         log,
	}
}

// CreateCompany registers a company and opens a fresh IN_PROGRESS
// assessment for it.
func (s *AssessmentService) CreateCompany(ctx context.Context, req *model.CreateCompanyRequest) (*model.Company, *model.Assessment, error) {
	company := &model.Company{
		Name:            req.Name,
		Industry:        req.Industry,
		Size:            req.Size,
		Region:          req.Region,
		ContactEmail:    req.ContactEmail,
		ContactName:     req.ContactName,
		AdditionalNotes: req.AdditionalNotes,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, nil, err
	}

	assessment := &model.Assessment{CompanyID: company.ID}
	if err := s.assessments.Create(ctx, assessment); err != nil {
		return nil, nil, err
	}

	s.log.Info().
		Str("company_id", company.ID.String()).
		Str("assessment_id", assessment.ID.String()).
		Str("industry", company.Industry).
		Msg("assessment opened")

	return company, assessment, nil
}

// SaveResponses upserts a batch of answers for an in-progress assessment.
// Unknown question IDs are rejected; submitting again after completion is
// not allowed.
func (s *AssessmentService) SaveResponses(ctx context.Context, assessmentID uuid.UUID, req *model.SaveResponsesRequest) error {
	assessment, err := s.assessments.GetByID(ctx, assessmentID)
	if err != nil {
		return mapNoRows(err)
	}
	if assessment.Status == model.AssessmentStatusCompleted {
		return ErrAlreadySubmitted
	}

	for _, p := range req.Responses {
		if !s.knownQuestion(p.QuestionID) {
			return ErrUnknownQuestion
		}
	}

	return s.responses.SaveBatch(ctx, assessmentID, req.Responses)
}

// Submit scores an assessment and finalizes it. When the request carries a
// response map it wins over previously saved answers; an empty request
// falls back to what was saved incrementally. The scored result is stored,
// the result email is queued, and the live feed is notified.
func (s *AssessmentService) Submit(ctx context.Context, assessmentID uuid.UUID, responses map[string]any) (*AssessmentResult, error) {
	assessment, err := s.assessments.GetByID(ctx, assessmentID)
	if err != nil {
		return nil, mapNoRows(err)
	}
	if assessment.Status == model.AssessmentStatusCompleted {
		return nil, ErrAlreadySubmitted
	}

	company, err := s.companies.GetByID(ctx, assessment.CompanyID)
	if err != nil {
		return nil, mapNoRows(err)
	}

	if len(responses) == 0 {
		saved, err := s.responses.AnswerMap(ctx, assessmentID)
		if err != nil {
			return nil, err
		}
		if len(saved) == 0 {
			return nil, ErrEmptyResponses
		}
		responses = saved
	} else {
		// Keep the raw submission queryable alongside the scored result.
		if err := s.persistSubmittedAnswers(ctx, assessmentID, responses); err != nil {
			s.log.Warn().Err(err).
				Str("assessment_id", assessmentID.String()).
				Msg("persisting submitted answers failed")
		}
	}

	result := s.scorer.CalculateScore(responses)
	summary := scoring.Summarize(result)

	raw, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	completedAt, err := s.assessments.Complete(ctx, assessmentID,
		result.TotalScore, result.MaxScore, result.Percentage,
		result.Maturity.Level, result.Maturity.Label, raw)
	if err != nil {
		return nil, err
	}

	assessment.Status = model.AssessmentStatusCompleted
	assessment.TotalScore = &result.TotalScore
	assessment.MaxScore = &result.MaxScore
	assessment.Percentage = &result.Percentage
	assessment.MaturityLevel = &result.Maturity.Level
	assessment.MaturityLabel = &result.Maturity.Label
	assessment.Result = raw
	assessment.CompletedAt = &completedAt

	s.notifier.EnqueueResultEmail(ctx, model.ResultEmailJob{
		AssessmentID:  assessmentID,
		CompanyName:   company.Name,
		ContactName:   company.ContactName,
		ContactEmail:  company.ContactEmail,
		TotalScore:    result.TotalScore,
		MaxScore:      result.MaxScore,
		Percentage:    result.Percentage,
		MaturityLevel: result.Maturity.Level,
		MaturityLabel: result.Maturity.Label,
		Summary:       summary.Summary,
	})

	s.notifier.PublishSubmission(ctx, model.SubmissionEvent{
		AssessmentID:  assessmentID,
		CompanyName:   company.Name,
		Industry:      company.Industry,
		Region:        company.Region,
		TotalScore:    result.TotalScore,
		MaxScore:      result.MaxScore,
		Percentage:    result.Percentage,
		MaturityLevel: result.Maturity.Level,
		MaturityLabel: result.Maturity.Label,
		SubmittedAt:   completedAt,
	})

	s.log.Info().
		Str("assessment_id", assessmentID.String()).
		Int("total_score", result.TotalScore).
		Float64("percentage", result.Percentage).
		Int("maturity_level", result.Maturity.Level).
		Msg("assessment submitted")

	return &AssessmentResult{
		Assessment: assessment,
		Company:    company,
		Result:     result,
		Summary:    &summary,
	}, nil
}

// Get returns an assessment with its company and, when completed, the
// stored score breakdown.
func (s *AssessmentService) Get(ctx context.Context, assessmentID uuid.UUID) (*AssessmentResult, error) {
	assessment, err := s.assessments.GetByID(ctx, assessmentID)
	if err != nil {
		return nil, mapNoRows(err)
	}

	company, err := s.companies.GetByID(ctx, assessment.CompanyID)
	if err != nil {
		return nil, mapNoRows(err)
	}

	out := &AssessmentResult{Assessment: assessment, Company: company}
	if len(assessment.Result) > 0 {
		var result scoring.ScoreResult
		if err := json.Unmarshal(assessment.Result, &result); err == nil {
			summary := scoring.Summarize(&result)
			out.Result = &result
			out.Summary = &summary
		}
	}
	return out, nil
}

// List returns assessments joined with company data, newest first. The
// page and perPage inputs are clamped here, and the returned pagination
// reflects the effective values actually queried.
func (s *AssessmentService) List(ctx context.Context, page, perPage int, completedOnly bool) ([]model.AssessmentListItem, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	items, total, err := s.assessments.List(ctx, page, perPage, completedOnly)
	if err != nil {
		return nil, nil, err
	}

	if items == nil {
		items = []model.AssessmentListItem{}
	}

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: int(total),
		TotalPages: (int(total) + perPage - 1) / perPage,
	}
	return items, pagination, nil
}

func (s *AssessmentService) knownQuestion(id string) bool {
	for _, q := range s.schema.Questions() {
		if q.ID == id {
			return true
		}
	}
	return false
}

// persistSubmittedAnswers flattens a submit-time response map into saved
// response rows. Grouped shapes are flattened one level, matching the
// scorer's resolution rules.
func (s *AssessmentService) persistSubmittedAnswers(ctx context.Context, assessmentID uuid.UUID, responses map[string]any) error {
	var payloads []model.QuestionResponsePayload
	for _, q := range s.schema.Questions() {
		answer, found := scoring.LookupAnswer(responses, q.ID)
		if !found {
			continue
		}
		raw, err := json.Marshal(answer)
		if err != nil {
			continue
		}
		payloads = append(payloads, model.QuestionResponsePayload{
			QuestionID: q.ID,
			Answer:     raw,
		})
	}
	return s.responses.SaveBatch(ctx, assessmentID, payloads)
}

func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// ErrCodeFor maps service errors onto API error codes.
func ErrCodeFor(err error) response.ErrCode {
	switch {
	case errors.Is(err, ErrNotFound):
		return response.ErrNotFound
	case errors.Is(err, ErrAlreadySubmitted):
		return response.ErrAlreadySubmitted
	case errors.Is(err, ErrEmptyResponses):
		return response.ErrEmptyResponses
	case errors.Is(err, ErrUnknownQuestion):
		return response.ErrUnknownQuestion
	default:
		return response.ErrInternal
	}
}
