package nlu

import (
	"testing"
)

func TestDetect(t *testing.T) {
	strict := NewClassifier(IntentOther)

	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{
			name:    "delivery question",
			message: "Quels sont vos délais de livraison ?",
			want:    IntentFAQ,
		},
		{
			name:    "refund question uppercase",
			message: "COMMENT OBTENIR UN REMBOURSEMENT",
			want:    IntentFAQ,
		},
		{
			name:    "tracking in english",
			message: "where is my tracking number",
			want:    IntentFAQ,
		},
		{
			name:    "product search",
			message: "Je cherche un t-shirt en coton",
			want:    IntentProductSearch,
		},
		{
			name:    "product noun only",
			message: "avez-vous des chaussures ?",
			want:    IntentProductSearch,
		},
		{
			name:    "unrelated question",
			message: "Quelle est la capitale de la France ?",
			want:    IntentOther,
		},
		{
			name:    "empty message",
			message: "",
			want:    IntentOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strict.Detect(tt.message); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

// FAQ keywords must win even when a product keyword is present in the same
// message.
func TestDetectFAQPriority(t *testing.T) {
	strict := NewClassifier(IntentOther)

	messages := []string{
		"Je cherche des informations sur la livraison",
		"je veux annuler ma commande",
		"retour possible pour un t-shirt ?",
	}

	for _, msg := range messages {
		if got := strict.Detect(msg); got != IntentFAQ {
			t.Errorf("Detect(%q) = %q, want FAQ (priority invariant)", msg, got)
		}
	}
}

func TestDetectDefaultPolicy(t *testing.T) {
	unmatched := "Quelle est la capitale de la France ?"

	strict := NewClassifier(IntentOther)
	if got := strict.Detect(unmatched); got != IntentOther {
		t.Errorf("strict policy: Detect(%q) = %q, want OTHER", unmatched, got)
	}

	semantic := NewClassifier(IntentFAQ)
	if got := semantic.Detect(unmatched); got != IntentFAQ {
		t.Errorf("semantic-fallback policy: Detect(%q) = %q, want FAQ", unmatched, got)
	}

	// The toggle must not change matched results
	if got := semantic.Detect("je cherche une montre"); got != IntentProductSearch {
		t.Errorf("semantic-fallback policy changed matched result: got %q", got)
	}
}

func TestNewClassifierDefault(t *testing.T) {
	c := NewClassifier("")
	if c.Default != IntentOther {
		t.Errorf("empty default should fall back to OTHER, got %q", c.Default)
	}
}
