package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ai-counselor-be/internal/constant"
	"ai-counselor-be/internal/pkg/logger"
	"ai-counselor-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

type stubLLM struct {
	lastPrompt string
	response   string
	err        error
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.response, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	s.lastPrompt = prompt
	return s.response, s.err
}

type stubRetriever struct {
	chunks []string
	err    error
}

func (s *stubRetriever) TopK(ctx context.Context, query string, k int) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	if k < len(s.chunks) {
		return s.chunks[:k], nil
	}
	return s.chunks, nil
}

func testLogger() logger.ILogger {
	return logger.NewZapLogger("logs/test.log", false)
}

func TestCounselorAnswerWithoutProvider(t *testing.T) {
	svc := NewCounselorService(nil, nil, 3, testLogger())

	answer := svc.Answer(context.Background(), "What should I study?")
	assert.Equal(t, constant.FixedUnavailableMessage, answer)
}

func TestCounselorAnswerWithoutRetriever(t *testing.T) {
	model := &stubLLM{response: "Consider software engineering."}
	svc := NewCounselorService(model, nil, 3, testLogger())

	answer := svc.Answer(context.Background(), "What should I study?")
	assert.Equal(t, "Consider software engineering.", answer)
	assert.Contains(t, model.lastPrompt, "career counselor assistant")
	assert.Contains(t, model.lastPrompt, "What should I study?")
	assert.NotContains(t, model.lastPrompt, "Context:")
}

func TestCounselorAnswerWithContext(t *testing.T) {
	model := &stubLLM{response: "Medicine fits your background."}
	retriever := &stubRetriever{chunks: []string{"chunk one", "chunk two", "chunk three", "chunk four"}}
	svc := NewCounselorService(model, retriever, 3, testLogger())

	answer := svc.Answer(context.Background(), "Career options after FSC?")
	assert.Equal(t, "Medicine fits your background.", answer)
	assert.Contains(t, model.lastPrompt, "Context:")
	assert.Contains(t, model.lastPrompt, "chunk one")
	assert.Contains(t, model.lastPrompt, "chunk three")
	// topK clamps the context to three chunks
	assert.NotContains(t, model.lastPrompt, "chunk four")
	assert.Contains(t, model.lastPrompt, "Career options after FSC?")
}

func TestCounselorAnswerRetrievalFault(t *testing.T) {
	model := &stubLLM{response: "unused"}
	retriever := &stubRetriever{err: errors.New("embedding service down")}
	svc := NewCounselorService(model, retriever, 3, testLogger())

	answer := svc.Answer(context.Background(), "anything")
	assert.Equal(t, constant.FixedApologyMessage, answer)
	assert.Empty(t, model.lastPrompt)
}

func TestCounselorAnswerGenerationFault(t *testing.T) {
	model := &stubLLM{err: errors.New("rate limited")}
	svc := NewCounselorService(model, nil, 3, testLogger())

	answer := svc.Answer(context.Background(), "anything")
	assert.Equal(t, constant.FixedApologyMessage, answer)
}

func TestCounselorPromptShape(t *testing.T) {
	model := &stubLLM{response: "ok"}
	retriever := &stubRetriever{chunks: []string{"alpha", "beta"}}
	svc := NewCounselorService(model, retriever, 3, testLogger())

	svc.Answer(context.Background(), "q")

	// Chunks are joined with blank lines inside the context block.
	assert.True(t, strings.Contains(model.lastPrompt, "alpha\n\nbeta"))
}
