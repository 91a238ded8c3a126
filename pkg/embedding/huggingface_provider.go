package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// paraphrase-multilingual-MiniLM-L12-v2: light multilingual model, good
	// French coverage, 384-dimensional output.
	defaultHFModel     = "sentence-transformers/paraphrase-multilingual-MiniLM-L12-v2"
	defaultHFDimension = 384
)

// HuggingFaceProvider calls the Hugging Face feature-extraction pipeline.
type HuggingFaceProvider struct {
	apiKey    string
	model     string
	dimension int
	client    *http.Client
}

var _ Provider = &HuggingFaceProvider{}

func NewHuggingFaceProvider(apiKey, model string) *HuggingFaceProvider {
	if model == "" {
		model = defaultHFModel
	}
	return &HuggingFaceProvider{
		apiKey:    apiKey,
		model:     model,
		dimension: defaultHFDimension,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type hfFeatureExtractionRequest struct {
	Inputs []string `json:"inputs"`
}

func (p *HuggingFaceProvider) Dimension() int {
	return p.dimension
}

func (p *HuggingFaceProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := p.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (p *HuggingFaceProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	reqBody := hfFeatureExtractionRequest{Inputs: texts}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("https://router.huggingface.co/hf-inference/models/%s/pipeline/feature-extraction", p.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.apiKey))
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("huggingface request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("huggingface embedding error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var vectors [][]float32
	if err := json.Unmarshal(bodyBytes, &vectors); err != nil {
		return nil, fmt.Errorf("unmarshal embeddings: %w", err)
	}

	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d vectors for %d inputs", len(vectors), len(texts))
	}

	return vectors, nil
}
