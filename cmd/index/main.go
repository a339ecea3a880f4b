package main

import (
	"context"
	"log"

	"ai-counselor-be/internal/config"
	"ai-counselor-be/pkg/embedding"
	"ai-counselor-be/pkg/vectorindex"
)

// Rebuilds the knowledge-base index from the source PDF, overwriting any
// persisted index. The REST server only builds when no index file exists, so
// run this after swapping the PDF or the embedding model.
func main() {
	cfg := config.Load()

	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Rag.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Rag.OllamaBaseURL, cfg.Rag.OllamaModel)
	} else if cfg.Keys.GoogleGemini != "" {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
	} else {
		log.Fatal("Error: no embedding provider configured (set GOOGLE_API_KEY or EMBEDDING_PROVIDER=ollama)")
	}

	ctx := context.Background()
	buildCfg := vectorindex.BuildConfig{
		PdfPath:      cfg.Rag.PdfPath,
		IndexPath:    cfg.Rag.IndexPath,
		ChunkSize:    cfg.Rag.ChunkSize,
		ChunkOverlap: cfg.Rag.ChunkOverlap,
		ModelInfo:    cfg.Rag.EmbeddingProvider,
	}

	idx, err := vectorindex.Build(ctx, buildCfg, embeddingProvider)
	if err != nil {
		log.Fatal("Error: index build failed: ", err)
	}

	if err := idx.Save(cfg.Rag.IndexPath); err != nil {
		log.Fatal("Error: could not persist index: ", err)
	}

	log.Printf("Index built: %d chunks, dimension %d, saved to %s", len(idx.Chunks), idx.Dimension, cfg.Rag.IndexPath)
}
