package vectorindex

import (
	"context"
	"fmt"
	"os"

	"ai-counselor-be/pkg/embedding"
	"ai-counselor-be/pkg/pdf"
	"ai-counselor-be/pkg/utils"
)

// BuildConfig describes where the source document and persisted index live
// and how the document is chunked.
type BuildConfig struct {
	PdfPath      string
	IndexPath    string
	ChunkSize    int
	ChunkOverlap int
	ModelInfo    string
}

// LoadOrBuild loads the persisted index if present, otherwise parses the
// source PDF, chunks it, embeds every chunk and persists the result.
// Returns an error when neither path is possible; callers degrade to
// retrieval-free answering.
func LoadOrBuild(ctx context.Context, cfg BuildConfig, embedder embedding.EmbeddingProvider) (*Index, error) {
	if embedder == nil {
		return nil, fmt.Errorf("no embedding provider configured")
	}

	if _, err := os.Stat(cfg.IndexPath); err == nil {
		idx, err := LoadIndex(cfg.IndexPath, embedder)
		if err != nil {
			return nil, fmt.Errorf("load index %s: %w", cfg.IndexPath, err)
		}
		return idx, nil
	}

	if _, err := os.Stat(cfg.PdfPath); err != nil {
		return nil, fmt.Errorf("source document %s not found", cfg.PdfPath)
	}

	idx, err := Build(ctx, cfg, embedder)
	if err != nil {
		return nil, err
	}

	if err := idx.Save(cfg.IndexPath); err != nil {
		// The index still works this run even if persisting it failed.
		return idx, fmt.Errorf("persist index %s: %w", cfg.IndexPath, err)
	}
	return idx, nil
}

// Build parses and embeds the source PDF unconditionally.
func Build(ctx context.Context, cfg BuildConfig, embedder embedding.EmbeddingProvider) (*Index, error) {
	text, err := pdf.ExtractText(cfg.PdfPath)
	if err != nil {
		return nil, err
	}

	chunkSize := cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = 2000
	}
	overlap := cfg.ChunkOverlap
	if overlap < 0 {
		overlap = 0
	}

	chunks := utils.SplitText(text, chunkSize, overlap)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("document %s produced no chunks", cfg.PdfPath)
	}

	vectors := make([][]float32, 0, len(chunks))
	for i, chunk := range chunks {
		vec, err := embedder.Generate(ctx, chunk, embedding.TaskTypeDocument)
		if err != nil {
			return nil, fmt.Errorf("embed chunk %d/%d: %w", i+1, len(chunks), err)
		}
		vectors = append(vectors, vec)
	}

	return New(chunks, vectors, cfg.ModelInfo, embedder)
}
