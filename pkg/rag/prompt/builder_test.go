package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainPromptContainsQuestion(t *testing.T) {
	p := NewCounselorBuilder("What can I do with a biology degree?").Build()

	assert.Contains(t, p, "career counselor")
	assert.Contains(t, p, "What can I do with a biology degree?")
	assert.NotContains(t, p, "Context:")
	assert.True(t, strings.HasSuffix(p, "Answer:"))
}

func TestContextPromptJoinsChunksWithBlankLine(t *testing.T) {
	p := NewCounselorBuilder("Which field pays best?").
		WithContext([]string{"chunk one", "chunk two"}).
		Build()

	assert.Contains(t, p, "Context:")
	assert.Contains(t, p, "chunk one\n\nchunk two")
	assert.Contains(t, p, "Which field pays best?")
}

func TestEmptyContextFallsBackToPlain(t *testing.T) {
	p := NewCounselorBuilder("q").WithContext(nil).Build()
	assert.NotContains(t, p, "Context:")
}
