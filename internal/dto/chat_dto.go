package dto

type ChatRequest struct {
	Message   string `json:"message" validate:"required,min=1,max=2000"`
	SessionId string `json:"sessionId" validate:"omitempty,max=64"`
}

// ChatSource is one evidence item surfaced alongside the answer. Score is
// omitted for sources that never went through scoring (product listings).
type ChatSource struct {
	Title string   `json:"title"`
	Text  string   `json:"text"`
	Score *float64 `json:"score,omitempty"`
}

type ChatResponse struct {
	Answer    string       `json:"answer"`
	Sources   []ChatSource `json:"sources"`
	SessionId string       `json:"sessionId"`
}
