package scoring

// QuestionScore is the per-question breakdown of a scored assessment,
// emitted in the schema's canonical question order.
type QuestionScore struct {
	QuestionID string `json:"question_id"`
	Domain     string `json:"domain"`
	Text       string `json:"question_text"`
	Points     int    `json:"points"`
	MaxPoints  int    `json:"max_points"`
	// UserAnswer is the normalized answer: a string for single-select and
	// text questions, a []string for multi-select, nil when unanswered.
	UserAnswer any `json:"user_answer"`
}

// Maturity classifies the overall posture into one of five ordered tiers.
type Maturity struct {
	Level           int    `json:"level"`
	Label           string `json:"label"`
	Characteristics string `json:"characteristics"`
	NextStep        string `json:"next_step"`
}

// GapAnalysis quantifies the distance to the maximum attainable score.
type GapAnalysis struct {
	CurrentPoints   int    `json:"current_points"`
	TargetPoints    int    `json:"target_points"`
	GapPoints       int    `json:"gap_points"`
	EstimatedEffort string `json:"estimated_effort"`
}

// Recommendation is a single prioritized improvement action.
type Recommendation struct {
	Priority     string `json:"priority"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	CurrentScore int    `json:"current_score"`
	TargetScore  int    `json:"target_score,omitempty"`
}

// ScoreResult is the complete output of one scoring run. It is plain
// structured data: safe to render as JSON, store, or email as-is.
type ScoreResult struct {
	PerQuestion     []QuestionScore  `json:"question_scores"`
	TotalScore      int              `json:"total_score"`
	MaxScore        int              `json:"max_score"`
	Percentage      float64          `json:"percentage"`
	AverageScore    float64          `json:"average_score"`
	Maturity        Maturity         `json:"maturity"`
	Gap             GapAnalysis      `json:"gap_analysis"`
	Recommendations []Recommendation `json:"recommendations"`
}
