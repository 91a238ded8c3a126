package rag

// Candidate is a retrieved document with its relevance score.
// Scores are comparable only within one scoring method: retrieval scores
// and reranker scores are never mixed in a single sort pass.
type Candidate struct {
	ID       string
	Content  string
	Score    float64
	Metadata map[string]interface{}
}

// ProductCandidate is a retrieved catalog product.
type ProductCandidate struct {
	ProductID    string
	Title        string
	Description  string
	Slug         string
	CategoryID   string
	CategoryName string
	Score        float64
}
