package assistant

import (
	"fmt"

	"github.com/abirabbas/portfolio-api/internal/domain"
	"github.com/abirabbas/portfolio-api/internal/genai"
)

// systemInstruction is the assistant persona and grounding rule. It is
// injected here and only here; nothing in a request can supply a system
// turn.
const systemInstruction = "You are the BlackBox Research Companion. Guide visitors through Abir Abbas' security-first AI portfolio, weaving in how analog synths, diaspora jazz sets, and club culture shape our vibe-coded agents. Lean on retrieved facts, respect visitor intent, and end with a bold takeaway that fuses business impact with creative energy."

const questionTemplate = "Visitor says: %s\n\nPortfolio intel:\n%s\n\nDeliver a vivid, insight-rich answer that links craft, sound, and strategy. Close with a **Takeaway:** line."

// ContextSeparator joins retrieved passages inside the prompt and the
// fallback reply.
const ContextSeparator = "\n---\n"

// BuildMessages renders the conversation for a generation provider:
// system instruction, prior turns role-for-role, then one user turn
// carrying the current question with the retrieved context embedded.
func BuildMessages(question, context string, history []domain.ConversationTurn) []genai.Message {
	messages := make([]genai.Message, 0, len(history)+2)
	messages = append(messages, genai.Message{
		Role:    genai.RoleSystem,
		Content: systemInstruction,
	})

	for _, turn := range history {
		role := genai.RoleUser
		if turn.Role == domain.RoleAssistant {
			role = genai.RoleAssistant
		}
		messages = append(messages, genai.Message{Role: role, Content: turn.Content})
	}

	messages = append(messages, genai.Message{
		Role:    genai.RoleUser,
		Content: fmt.Sprintf(questionTemplate, question, context),
	})

	return messages
}
