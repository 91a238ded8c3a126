package dto

type IngestDocument struct {
	ID      string            `json:"id" validate:"required"`
	Title   string            `json:"title"`
	Content string            `json:"content" validate:"required"`
	Meta    map[string]string `json:"meta"`
}

type IngestDocsRequest struct {
	Documents []IngestDocument `json:"documents" validate:"required,min=1,dive"`
}

type IngestProduct struct {
	ID           string  `json:"id" validate:"required"`
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description"`
	Slug         string  `json:"slug"`
	CategoryID   string  `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	Price        float64 `json:"price"`
}

type IngestProductsRequest struct {
	Products []IngestProduct `json:"products" validate:"required,min=1,dive"`
}

type IngestResponse struct {
	Indexed int `json:"indexed"`
}

type ProductSearchTestRequest struct {
	Query string `json:"query" validate:"required,min=1"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=50"`
}

type ProductSearchResult struct {
	ProductID    string  `json:"productId"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Slug         string  `json:"slug"`
	CategoryID   string  `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	Score        float64 `json:"score"`
}

type ProductSearchTestResponse struct {
	Results []ProductSearchResult `json:"results"`
}
