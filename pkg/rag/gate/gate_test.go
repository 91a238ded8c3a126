package gate

import (
	"testing"

	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/rag"
)

func candidates(scores ...float64) []rag.Candidate {
	out := make([]rag.Candidate, len(scores))
	for i, s := range scores {
		out[i] = rag.Candidate{ID: string(rune('a' + i)), Score: s}
	}
	return out
}

func TestEvaluate(t *testing.T) {
	g := NewGate()

	tests := []struct {
		name          string
		input         []rag.Candidate
		wantAccepted  int
		wantBestScore float64
	}{
		{
			name:          "empty input rejects with best score zero",
			input:         nil,
			wantAccepted:  0,
			wantBestScore: 0,
		},
		{
			name:          "all below cutoff rejects",
			input:         candidates(0.05, 0.02, 0.09),
			wantAccepted:  0,
			wantBestScore: 0.09,
		},
		{
			name:          "accepts at most top-k",
			input:         candidates(0.9, 0.8, 0.7, 0.6, 0.5),
			wantAccepted:  3,
			wantBestScore: 0.9,
		},
		{
			name:          "accepts fewer than top-k when input is small",
			input:         candidates(0.4),
			wantAccepted:  1,
			wantBestScore: 0.4,
		},
		{
			name:          "exactly at cutoff accepts",
			input:         candidates(0.1),
			wantAccepted:  1,
			wantBestScore: 0.1,
		},
		{
			name:          "one strong candidate among noise",
			input:         candidates(0.01, 0.95, 0.02),
			wantAccepted:  3,
			wantBestScore: 0.95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := g.Evaluate(tt.input)

			if len(res.Accepted) != tt.wantAccepted {
				t.Errorf("accepted = %d, want %d", len(res.Accepted), tt.wantAccepted)
			}
			if res.BestScore != tt.wantBestScore {
				t.Errorf("bestScore = %v, want %v", res.BestScore, tt.wantBestScore)
			}
			if len(res.Accepted) > g.TopK {
				t.Errorf("accepted %d exceeds TopK %d", len(res.Accepted), g.TopK)
			}

			// Accepted must be sorted descending
			for i := 1; i < len(res.Accepted); i++ {
				if res.Accepted[i].Score > res.Accepted[i-1].Score {
					t.Errorf("accepted not sorted descending at index %d", i)
				}
			}
		})
	}
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	g := NewGate()
	input := candidates(0.1, 0.9, 0.5)

	g.Evaluate(input)

	if input[0].Score != 0.1 || input[1].Score != 0.9 || input[2].Score != 0.5 {
		t.Error("Evaluate mutated the caller's slice")
	}
}
