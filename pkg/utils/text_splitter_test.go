package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTextShortInput(t *testing.T) {
	chunks := SplitText("hello", 100, 10)
	assert.Equal(t, []string{"hello"}, chunks)
}

func TestSplitTextOverlap(t *testing.T) {
	text := strings.Repeat("abcdefghij", 10) // 100 chars
	chunks := SplitText(text, 40, 10)

	assert.True(t, len(chunks) > 1)
	for i := 0; i < len(chunks)-1; i++ {
		assert.Len(t, chunks[i], 40)
		// tail of one chunk is the head of the next
		assert.Equal(t, chunks[i][30:], chunks[i+1][:10])
	}
}

func TestSplitTextCoversWholeInput(t *testing.T) {
	text := strings.Repeat("x", 95)
	chunks := SplitText(text, 40, 10)

	last := chunks[len(chunks)-1]
	assert.True(t, strings.HasSuffix(text, last))

	// stitched chunks (dropping overlaps) rebuild the input
	var rebuilt strings.Builder
	rebuilt.WriteString(chunks[0])
	for _, c := range chunks[1:] {
		if len(c) > 10 {
			rebuilt.WriteString(c[10:])
		}
	}
	assert.True(t, strings.HasPrefix(rebuilt.String(), text))
}

func TestSplitTextOverlapLargerThanChunk(t *testing.T) {
	text := strings.Repeat("y", 50)
	// degenerate config must not loop forever
	chunks := SplitText(text, 10, 10)
	assert.NotEmpty(t, chunks)
}
