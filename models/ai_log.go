package models

import (
	"time"
)

// AILog is one remote LLM call record (monitoring purpose, never persisted)
type AILog struct {
	Provider     string    `json:"provider"`
	ModelName    string    `json:"model_name"`
	ModelVersion string    `json:"model_version,omitempty"`
	Operation    string    `json:"operation"`
	InputTokens  int64     `json:"input_tokens"`
	OutputTokens int64     `json:"output_tokens"`
	TotalTokens  int64     `json:"total_tokens"`
	DurationMs   int64     `json:"duration_ms"`
	ErrorMessage *string   `json:"error_message,omitempty"`
	RequestedAt  time.Time `json:"requested_at"`
	CompletedAt  time.Time `json:"completed_at"`
}
