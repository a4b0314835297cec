package domain

import "fmt"

// Role identifies who produced a conversation turn. Callers may only
// supply user and assistant turns; the system instruction is injected
// by the prompt assembler and is never caller-controlled.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn is one prior exchange in the visitor conversation,
// oldest-first.
type ConversationTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// AssistantRequest is the payload accepted at the assistant trust boundary.
type AssistantRequest struct {
	Message string             `json:"message"`
	History []ConversationTurn `json:"history,omitempty"`
}

// ValidationIssue describes a single schema violation in a request.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks the request schema. It returns the full list of issues
// so the caller can surface them all at once, or nil when the request is
// well-formed. No retrieval or generation work may happen before this
// passes.
func (r *AssistantRequest) Validate() []ValidationIssue {
	var issues []ValidationIssue

	if r.Message == "" {
		issues = append(issues, ValidationIssue{
			Field:   "message",
			Message: "Message must not be empty",
		})
	}

	for i, turn := range r.History {
		if turn.Role != RoleUser && turn.Role != RoleAssistant {
			issues = append(issues, ValidationIssue{
				Field:   historyField(i, "role"),
				Message: "role must be 'user' or 'assistant'",
			})
		}
	}

	return issues
}

func historyField(index int, field string) string {
	return fmt.Sprintf("history[%d].%s", index, field)
}

// ModeFallback marks replies produced by the deterministic composition
// path rather than a hosted model.
const ModeFallback = "fallback"

// AssistantResponse is the uniform result envelope returned to both
// deployment shapes.
type AssistantResponse struct {
	Reply   string              `json:"reply"`
	Sources []map[string]string `json:"sources"`
	Mode    string              `json:"mode"`
}
