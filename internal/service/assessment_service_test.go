package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harir2002/cyber-resilience-Quiz/internal/model"
	"github.com/harir2002/cyber-resilience-Quiz/internal/questionnaire"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCompanyStore is a mock implementation of CompanyStore.
type MockCompanyStore struct {
	mock.Mock
}

func (m *MockCompanyStore) Create(ctx context.Context, c *model.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompanyStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Company), args.Error(1)
}

func (m *MockCompanyStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockAssessmentStore is a mock implementation of AssessmentStore.
type MockAssessmentStore struct {
	mock.Mock
}

func (m *MockAssessmentStore) Create(ctx context.Context, a *model.Assessment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssessmentStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Assessment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Assessment), args.Error(1)
}

func (m *MockAssessmentStore) Complete(ctx context.Context, id uuid.UUID, totalScore, maxScore int, percentage float64, maturityLevel int, maturityLabel string, result json.RawMessage) (time.Time, error) {
	args := m.Called(ctx, id, totalScore, maxScore, percentage, maturityLevel, maturityLabel, result)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *MockAssessmentStore) List(ctx context.Context, page, perPage int, completedOnly bool) ([]model.AssessmentListItem, int64, error) {
	args := m.Called(ctx, page, perPage, completedOnly)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.AssessmentListItem), args.Get(1).(int64), args.Error(2)
}

func (m *MockAssessmentStore) Stats(ctx context.Context) (*model.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stats), args.Error(1)
}

// MockResponseStore is a mock implementation of ResponseStore.
type MockResponseStore struct {
	mock.Mock
}

func (m *MockResponseStore) SaveBatch(ctx context.Context, assessmentID uuid.UUID, payloads []model.QuestionResponsePayload) error {
	args := m.Called(ctx, assessmentID, payloads)
	return args.Error(0)
}

func (m *MockResponseStore) ListByAssessment(ctx context.Context, assessmentID uuid.UUID) ([]model.ResponseRecord, error) {
	args := m.Called(ctx, assessmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ResponseRecord), args.Error(1)
}

func (m *MockResponseStore) AnswerMap(ctx context.Context, assessmentID uuid.UUID) (map[string]any, error) {
	args := m.Called(ctx, assessmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

// MockNotifier records submission side effects.
type MockNotifier struct {
	emails []model.ResultEmailJob
	events []model.SubmissionEvent
}

func (m *MockNotifier) EnqueueResultEmail(ctx context.Context, job model.ResultEmailJob) {
	m.emails = append(m.emails, job)
}

func (m *MockNotifier) PublishSubmission(ctx context.Context, event model.SubmissionEvent) {
	m.events = append(m.events, event)
}

type serviceFixture struct {
	svc         *AssessmentService
	companies   *MockCompanyStore
	assessments *MockAssessmentStore
	responses   *MockResponseStore
	notifier    *MockNotifier
}

func newFixture(t *testing.T) *serviceFixture {
	t.Helper()
	f := &serviceFixture{
		companies:   new(MockCompanyStore),
		assessments: new(MockAssessmentStore),
		responses:   new(MockResponseStore),
		notifier:    new(MockNotifier),
	}
	f.svc = NewAssessmentService(
		questionnaire.Default(),
		f.companies, f.assessments, f.responses, f.notifier,
		zerolog.Nop(),
	)
	return f
}

func TestCreateCompanyOpensAssessment(t *testing.T) {
	f := newFixture(t)
	companyID := uuid.New()
	assessmentID := uuid.New()

	f.companies.On("Create", mock.Anything, mock.AnythingOfType("*model.Company")).
		Run(func(args mock.Arguments) {
			c := args.Get(1).(*model.Company)
			c.ID = companyID
		}).Return(nil)
	f.assessments.On("Create", mock.Anything, mock.AnythingOfType("*model.Assessment")).
		Run(func(args mock.Arguments) {
			a := args.Get(1).(*model.Assessment)
			a.ID = assessmentID
		}).Return(nil)

	company, assessment, err := f.svc.CreateCompany(context.Background(), &model.CreateCompanyRequest{
		Name:         "Acme Corp",
		Industry:     "Manufacturing",
		Size:         "201-500 employees",
		Region:       "India",
		ContactEmail: "security@acme.example",
	})
	require.NoError(t, err)
	assert.Equal(t, companyID, company.ID)
	assert.Equal(t, assessmentID, assessment.ID)
	assert.Equal(t, companyID, assessment.CompanyID)
	f.companies.AssertExpectations(t)
	f.assessments.AssertExpectations(t)
}

func TestSaveResponsesRejectsUnknownQuestion(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()

	f.assessments.On("GetByID", mock.Anything, id).Return(&model.Assessment{
		ID:     id,
		Status: model.AssessmentStatusInProgress,
	}, nil)

	err := f.svc.SaveResponses(context.Background(), id, &model.SaveResponsesRequest{
		Responses: []model.QuestionResponsePayload{
			{QuestionID: "q99_bogus", Answer: json.RawMessage(`"whatever"`)},
		},
	})
	assert.ErrorIs(t, err, ErrUnknownQuestion)
	f.responses.AssertNotCalled(t, "SaveBatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestSaveResponsesRejectsCompletedAssessment(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()

	f.assessments.On("GetByID", mock.Anything, id).Return(&model.Assessment{
		ID:     id,
		Status: model.AssessmentStatusCompleted,
	}, nil)

	err := f.svc.SaveResponses(context.Background(), id, &model.SaveResponsesRequest{
		Responses: []model.QuestionResponsePayload{
			{QuestionID: "q1_rto", Answer: json.RawMessage(`"Minutes"`)},
		},
	})
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestSubmitScoresAndNotifies(t *testing.T) {
	f := newFixture(t)
	assessmentID := uuid.New()
	companyID := uuid.New()
	completedAt := time.Now()

	f.assessments.On("GetByID", mock.Anything, assessmentID).Return(&model.Assessment{
		ID:        assessmentID,
		CompanyID: companyID,
		Status:    model.AssessmentStatusInProgress,
	}, nil)
	f.companies.On("GetByID", mock.Anything, companyID).Return(&model.Company{
		ID:           companyID,
		Name:         "Acme Corp",
		Industry:     "Manufacturing",
		Region:       "India",
		ContactEmail: "security@acme.example",
	}, nil)
	f.responses.On("SaveBatch", mock.Anything, assessmentID, mock.Anything).Return(nil)
	f.assessments.On("Complete", mock.Anything, assessmentID,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(completedAt, nil)

	result, err := f.svc.Submit(context.Background(), assessmentID, map[string]any{
		"q1_rto":              "Minutes",
		"q3_recovery_testing": "Quarterly + documented",
	})
	require.NoError(t, err)

	assert.Equal(t, model.AssessmentStatusCompleted, result.Assessment.Status)
	assert.Equal(t, 7, result.Result.TotalScore)
	assert.Equal(t, 48, result.Result.MaxScore)
	require.NotNil(t, result.Summary)

	require.Len(t, f.notifier.emails, 1)
	assert.Equal(t, "security@acme.example", f.notifier.emails[0].ContactEmail)
	assert.Equal(t, 7, f.notifier.emails[0].TotalScore)

	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, "Acme Corp", f.notifier.events[0].CompanyName)
	assert.Equal(t, completedAt, f.notifier.events[0].SubmittedAt)
}

func TestSubmitRejectsDoubleSubmission(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()

	f.assessments.On("GetByID", mock.Anything, id).Return(&model.Assessment{
		ID:     id,
		Status: model.AssessmentStatusCompleted,
	}, nil)

	_, err := f.svc.Submit(context.Background(), id, map[string]any{"q1_rto": "Minutes"})
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Empty(t, f.notifier.emails)
}

func TestSubmitFallsBackToSavedAnswers(t *testing.T) {
	f := newFixture(t)
	assessmentID := uuid.New()
	companyID := uuid.New()

	f.assessments.On("GetByID", mock.Anything, assessmentID).Return(&model.Assessment{
		ID:        assessmentID,
		CompanyID: companyID,
		Status:    model.AssessmentStatusInProgress,
	}, nil)
	f.companies.On("GetByID", mock.Anything, companyID).Return(&model.Company{
		ID:           companyID,
		Name:         "Acme Corp",
		ContactEmail: "security@acme.example",
	}, nil)
	f.responses.On("AnswerMap", mock.Anything, assessmentID).Return(map[string]any{
		"q1_rto": "Hours",
	}, nil)
	f.assessments.On("Complete", mock.Anything, assessmentID,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(time.Now(), nil)

	result, err := f.svc.Submit(context.Background(), assessmentID, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Result.TotalScore)
}

func TestSubmitWithNothingSavedFails(t *testing.T) {
	f := newFixture(t)
	assessmentID := uuid.New()
	companyID := uuid.New()

	f.assessments.On("GetByID", mock.Anything, assessmentID).Return(&model.Assessment{
		ID:        assessmentID,
		CompanyID: companyID,
		Status:    model.AssessmentStatusInProgress,
	}, nil)
	f.companies.On("GetByID", mock.Anything, companyID).Return(&model.Company{ID: companyID}, nil)
	f.responses.On("AnswerMap", mock.Anything, assessmentID).Return(map[string]any{}, nil)

	_, err := f.svc.Submit(context.Background(), assessmentID, nil)
	assert.ErrorIs(t, err, ErrEmptyResponses)
	f.assessments.AssertNotCalled(t, "Complete",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything)
}

func TestGetDecodesStoredResult(t *testing.T) {
	f := newFixture(t)
	assessmentID := uuid.New()
	companyID := uuid.New()

	stored := json.RawMessage(`{"total_score":24,"max_score":48,"percentage":50,"maturity":{"level":2,"label":"RISK-INFORMED"}}`)
	f.assessments.On("GetByID", mock.Anything, assessmentID).Return(&model.Assessment{
		ID:        assessmentID,
		CompanyID: companyID,
		Status:    model.AssessmentStatusCompleted,
		Result:    stored,
	}, nil)
	f.companies.On("GetByID", mock.Anything, companyID).Return(&model.Company{ID: companyID}, nil)

	out, err := f.svc.Get(context.Background(), assessmentID)
	require.NoError(t, err)
	require.NotNil(t, out.Result)
	assert.Equal(t, 24, out.Result.TotalScore)
	require.NotNil(t, out.Summary)
	assert.Equal(t, "RISK-INFORMED", out.Summary.Level)
}

func TestListClampsInputsAndReportsEffectivePagination(t *testing.T) {
	f := newFixture(t)

	// Out-of-range inputs clamp to page 1 / 20 per page, the store sees
	// the clamped values, and the envelope reports them.
	f.assessments.On("List", mock.Anything, 1, 20, false).
		Return([]model.AssessmentListItem{}, int64(45), nil)

	items, pagination, err := f.svc.List(context.Background(), -3, 500, false)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 20, pagination.PerPage)
	assert.Equal(t, 45, pagination.TotalItems)
	assert.Equal(t, 3, pagination.TotalPages)
	f.assessments.AssertExpectations(t)
}
