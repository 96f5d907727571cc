package api

// Shared response envelopes. Feature packages define their own payloads;
// these cover the error/ack shapes every handler returns.

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Service string `json:"service" example:"kgym-api"`
}

// EmailQueuedResponse acknowledges an outbound email accepted onto the queue.
type EmailQueuedResponse struct {
	Message string `json:"message" example:"email queued"`
	To      string `json:"to" example:"aluno@example.com"`
}
