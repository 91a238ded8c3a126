package gate

import (
	"sort"

	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/rag"
)

const (
	DefaultTopK     = 3
	DefaultMinScore = 0.1
)

// Result is the gate decision over a candidate set.
type Result struct {
	Accepted  []rag.Candidate
	BestScore float64
}

// Accepted evidence is non-empty iff the candidates were non-empty and the
// best score cleared the cutoff.
func (r Result) Passed() bool {
	return len(r.Accepted) > 0
}

// Gate enforces top-K + minimum-score acceptance over retrieved evidence.
// This is a hard gate: on rejection the caller must fall back, there is no
// low-confidence answer path.
type Gate struct {
	TopK     int
	MinScore float64
}

func NewGate() Gate {
	return Gate{
		TopK:     DefaultTopK,
		MinScore: DefaultMinScore,
	}
}

// Evaluate sorts candidates descending by score, keeps the first TopK and
// accepts them only if the best score reaches MinScore.
func (g Gate) Evaluate(candidates []rag.Candidate) Result {
	if len(candidates) == 0 {
		return Result{Accepted: []rag.Candidate{}, BestScore: 0}
	}

	sorted := make([]rag.Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })

	bestScore := sorted[0].Score
	if bestScore < g.MinScore {
		return Result{Accepted: []rag.Candidate{}, BestScore: bestScore}
	}

	topK := g.TopK
	if topK > len(sorted) {
		topK = len(sorted)
	}
	return Result{Accepted: sorted[:topK], BestScore: bestScore}
}
