package prompt

import (
	"strings"

	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/llm"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/rag"
)

// SystemPrompt is the fixed assistant persona sent as the first message of
// every generation call.
const SystemPrompt = "Tu es un assistant client pour une boutique en ligne nommée ShopyVerse. " +
	"Tu réponds en français, de manière concise et utile. " +
	"Tu t'appuies en priorité sur les informations de la base de connaissances FAQ. " +
	"Si l'information n'est pas disponible, tu le dis clairement."

// Builder assembles the grounding prompt for one turn: system persona, the
// prior history verbatim, then a final user message holding the delimited
// context block and the raw question.
type Builder struct {
	evidence []rag.Candidate
	question string
	history  []llm.Message
}

func NewBuilder(evidence []rag.Candidate, question string, history []llm.Message) *Builder {
	return &Builder{
		evidence: evidence,
		question: question,
		history:  history,
	}
}

// Build returns the full ordered message array for the generation call.
func (b *Builder) Build() []llm.Message {
	messages := make([]llm.Message, 0, len(b.history)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: SystemPrompt})
	messages = append(messages, b.history...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: b.groundingPrompt()})
	return messages
}

// groundingPrompt renders the delimited template. The delimiter text is a
// fixed contract the generation model is tuned against; do not vary it.
func (b *Builder) groundingPrompt() string {
	var sb strings.Builder

	sb.WriteString("===== CONTEXTE =====\n")
	for _, c := range b.evidence {
		sb.WriteString("- ")
		sb.WriteString(c.Content)
		sb.WriteString("\n")
	}
	sb.WriteString("===== FIN CONTEXTE =====\n\n")

	sb.WriteString("Question du client :\n")
	sb.WriteString(b.question)
	sb.WriteString("\n\n")

	sb.WriteString("Ta réponse (une ou deux phrases maximum) :")

	return sb.String()
}
