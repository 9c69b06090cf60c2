package factory

import (
	"fmt"

	"lark-inventory-be/pkg/llm"
	"lark-inventory-be/pkg/llm/ollama"
	"lark-inventory-be/pkg/llm/openai"
)

func NewLLMProvider(providerType, modelName, ollamaBaseURL, openaiBaseURL, openaiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	case "openai":
		if openaiKey == "" {
			return nil, fmt.Errorf("openai provider requires an API key")
		}
		provider := openai.NewOpenAIProvider(openaiKey, modelName)
		if openaiBaseURL != "" {
			provider.BaseURL = openaiBaseURL
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
