// Package vectorindex holds the on-disk vector index that grounds counselor
// answers in the source document. The index is built once, persisted as JSON
// and treated as read-only for the life of the process.
package vectorindex

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"

	"ai-counselor-be/pkg/embedding"
)

// Index is a brute-force cosine-similarity store. Vectors are L2-normalized
// at embed time, so similarity is a plain dot product.
type Index struct {
	Chunks    []string    `json:"chunks"`
	Vectors   [][]float32 `json:"vectors"`
	Dimension int         `json:"dimension"`
	ModelInfo string      `json:"model_info"`

	embedder embedding.EmbeddingProvider
}

var ErrUnavailable = errors.New("vector index unavailable")

// New builds an index over parallel chunk/vector slices.
func New(chunks []string, vectors [][]float32, modelInfo string, embedder embedding.EmbeddingProvider) (*Index, error) {
	if len(chunks) != len(vectors) {
		return nil, errors.New("chunks and vectors length mismatch")
	}
	if len(vectors) == 0 {
		return nil, errors.New("empty index")
	}
	dim := len(vectors[0])
	for _, v := range vectors {
		if len(v) != dim {
			return nil, errors.New("vector dimension mismatch")
		}
	}
	return &Index{
		Chunks:    chunks,
		Vectors:   vectors,
		Dimension: dim,
		ModelInfo: modelInfo,
		embedder:  embedder,
	}, nil
}

// TopK embeds the query and returns the k most similar chunk texts, best
// first.
func (idx *Index) TopK(ctx context.Context, query string, k int) ([]string, error) {
	if idx == nil || idx.embedder == nil {
		return nil, ErrUnavailable
	}
	if k <= 0 {
		k = 3
	}

	queryVec, err := idx.embedder.Generate(ctx, query, embedding.TaskTypeQuery)
	if err != nil {
		return nil, err
	}

	type scored struct {
		index int
		score float64
	}
	scores := make([]scored, len(idx.Vectors))
	for i, v := range idx.Vectors {
		scores[i] = scored{index: i, score: dot(v, queryVec)}
	}
	sort.Slice(scores, func(a, b int) bool {
		return scores[a].score > scores[b].score
	})

	if k > len(scores) {
		k = len(scores)
	}
	results := make([]string, 0, k)
	for i := 0; i < k; i++ {
		results = append(results, idx.Chunks[scores[i].index])
	}
	return results, nil
}

// Save writes the index to path, creating parent directories as needed.
func (idx *Index) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.Marshal(idx)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadIndex reads a persisted index and rebinds it to the given embedder.
func LoadIndex(path string, embedder embedding.EmbeddingProvider) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, err
	}
	if len(idx.Chunks) != len(idx.Vectors) {
		return nil, errors.New("corrupt index: chunks and vectors length mismatch")
	}
	idx.embedder = embedder
	return &idx, nil
}

func dot(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
