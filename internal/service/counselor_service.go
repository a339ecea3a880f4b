package service

import (
	"context"

	"ai-counselor-be/internal/constant"
	"ai-counselor-be/internal/pkg/logger"
	"ai-counselor-be/pkg/llm"
	"ai-counselor-be/pkg/rag/prompt"
)

// Retriever returns the k most relevant knowledge-base chunks for a query.
type Retriever interface {
	TopK(ctx context.Context, query string, k int) ([]string, error)
}

type ICounselorService interface {
	Answer(ctx context.Context, question string) string
}

type counselorService struct {
	llmProvider llm.LLMProvider
	retriever   Retriever
	topK        int
	log         logger.ILogger
}

// NewCounselorService accepts nil for llmProvider and retriever: a nil
// provider degrades to a fixed unavailability message, a nil retriever to
// prompting without context.
func NewCounselorService(llmProvider llm.LLMProvider, retriever Retriever, topK int, log logger.ILogger) ICounselorService {
	return &counselorService{
		llmProvider: llmProvider,
		retriever:   retriever,
		topK:        topK,
		log:         log,
	}
}

// Answer never returns an error: any fault inside generation is mapped to a
// fixed message so the chat flow always completes and both sides of the
// exchange get persisted.
func (s *counselorService) Answer(ctx context.Context, question string) string {
	if s.llmProvider == nil {
		return constant.FixedUnavailableMessage
	}

	builder := prompt.NewCounselorBuilder(question)

	if s.retriever != nil {
		chunks, err := s.retriever.TopK(ctx, question, s.topK)
		if err != nil {
			s.log.Error("COUNSELOR", "Retrieval failed", map[string]interface{}{"error": err.Error()})
			return constant.FixedApologyMessage
		}
		builder = builder.WithContext(chunks)
	}

	answer, err := s.llmProvider.Generate(ctx, builder.Build())
	if err != nil {
		s.log.Error("COUNSELOR", "Generation failed", map[string]interface{}{"error": err.Error()})
		return constant.FixedApologyMessage
	}

	return answer
}
