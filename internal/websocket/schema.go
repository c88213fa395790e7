package websocket

import "github.com/harir2002/cyber-resilience-Quiz/internal/model"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is used to peek at the action before full parsing.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventError      Event = "error"
	EventSubmission Event = "submission"
	EventPong       Event = "pong"
)

// SubmissionNotice pushes a freshly scored assessment to dashboard
// listeners.
type SubmissionNotice struct {
	Event      Event                 `json:"event"`
	Submission model.SubmissionEvent `json:"submission"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
