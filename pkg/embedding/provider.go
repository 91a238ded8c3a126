package embedding

import "context"

// Provider defines the interface for generating text embeddings.
// Embed vectorizes a single query; EmbedBatch vectorizes a document batch
// in one upstream call.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimension returns the output vector size of the underlying model.
	Dimension() int
}
