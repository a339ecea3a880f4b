package vectorindex

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEmbedder maps known words onto fixed unit vectors.
type stubEmbedder struct {
	vectors map[string][]float32
}

func (s *stubEmbedder) Generate(ctx context.Context, text string, taskType string) ([]float32, error) {
	if v, ok := s.vectors[text]; ok {
		return v, nil
	}
	return []float32{0, 0, 1}, nil
}

func newStub() *stubEmbedder {
	return &stubEmbedder{vectors: map[string][]float32{
		"medicine": {1, 0, 0},
		"business": {0, 1, 0},
		"arts":     {0, 0, 1},
	}}
}

func buildTestIndex(t *testing.T) *Index {
	t.Helper()
	stub := newStub()
	idx, err := New(
		[]string{"medicine", "business", "arts"},
		[][]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		"stub",
		stub,
	)
	require.NoError(t, err)
	return idx
}

func TestTopKOrdersBySimilarity(t *testing.T) {
	idx := buildTestIndex(t)

	results, err := idx.TopK(context.Background(), "medicine", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "medicine", results[0])
}

func TestTopKClampsK(t *testing.T) {
	idx := buildTestIndex(t)

	results, err := idx.TopK(context.Background(), "business", 10)
	require.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, "business", results[0])
}

func TestNilIndexIsUnavailable(t *testing.T) {
	var idx *Index
	_, err := idx.TopK(context.Background(), "anything", 3)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	idx := buildTestIndex(t)

	path := filepath.Join(t.TempDir(), "nested", "index.json")
	require.NoError(t, idx.Save(path))

	loaded, err := LoadIndex(path, newStub())
	require.NoError(t, err)
	assert.Equal(t, idx.Chunks, loaded.Chunks)
	assert.Equal(t, idx.Dimension, loaded.Dimension)

	results, err := loaded.TopK(context.Background(), "arts", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"arts"}, results)
}

func TestNewRejectsMismatchedLengths(t *testing.T) {
	_, err := New([]string{"a"}, [][]float32{{1}, {0}}, "stub", newStub())
	assert.Error(t, err)
}
