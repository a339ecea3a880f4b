package factory

import (
	"fmt"

	"ai-counselor-be/pkg/llm"
	"ai-counselor-be/pkg/llm/groq"
	"ai-counselor-be/pkg/llm/ollama"
)

// NewLLMProvider returns the configured chat backend, or an error when the
// provider's credentials are missing. Callers treat the error as "feature
// disabled", not as fatal.
func NewLLMProvider(providerType, modelName, baseURL, groqAPIKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "groq":
		if groqAPIKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY not set")
		}
		return groq.NewGroqProvider(groqAPIKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
