package prompt

import (
	"strings"
	"testing"

	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/llm"
	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/rag"
)

func TestBuildMessageLayout(t *testing.T) {
	history := []llm.Message{
		{Role: llm.RoleUser, Content: "Bonjour"},
		{Role: llm.RoleAssistant, Content: "Bonjour, comment puis-je vous aider ?"},
	}
	evidence := []rag.Candidate{
		{Content: "Livraison sous 3 à 5 jours ouvrés."},
		{Content: "Retours gratuits sous 30 jours."},
	}

	messages := NewBuilder(evidence, "Quels sont vos délais de livraison ?", history).Build()

	if len(messages) != 4 {
		t.Fatalf("got %d messages, want 4 (system + 2 history + grounding)", len(messages))
	}
	if messages[0].Role != llm.RoleSystem || messages[0].Content != SystemPrompt {
		t.Error("first message must be the fixed system persona")
	}
	if messages[1] != history[0] || messages[2] != history[1] {
		t.Error("history must be passed through verbatim and in order")
	}
	if messages[3].Role != llm.RoleUser {
		t.Errorf("final message role = %q, want user", messages[3].Role)
	}
}

// The delimiter text is an external contract; the exact layout matters.
func TestGroundingPromptTemplate(t *testing.T) {
	evidence := []rag.Candidate{
		{Content: "Livraison sous 3 à 5 jours ouvrés."},
		{Content: "Retours gratuits sous 30 jours."},
	}

	messages := NewBuilder(evidence, "Quels sont vos délais ?", nil).Build()
	got := messages[len(messages)-1].Content

	want := "===== CONTEXTE =====\n" +
		"- Livraison sous 3 à 5 jours ouvrés.\n" +
		"- Retours gratuits sous 30 jours.\n" +
		"===== FIN CONTEXTE =====\n\n" +
		"Question du client :\n" +
		"Quels sont vos délais ?\n\n" +
		"Ta réponse (une ou deux phrases maximum) :"

	if got != want {
		t.Errorf("grounding prompt mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestGroundingPromptEmptyEvidence(t *testing.T) {
	messages := NewBuilder(nil, "Question ?", nil).Build()
	got := messages[len(messages)-1].Content

	if !strings.Contains(got, "===== CONTEXTE =====\n===== FIN CONTEXTE =====") {
		t.Errorf("empty evidence must still render the delimiters, got:\n%s", got)
	}
}
