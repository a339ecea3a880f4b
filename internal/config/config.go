package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Rag      RagConfig
	Llm      LLMConfig
	Keys     APIKeys
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	TemplatesDir       string
}

type DatabaseConfig struct {
	Path string
}

type RagConfig struct {
	PdfPath           string
	IndexPath         string
	ChunkSize         int
	ChunkOverlap      int
	TopK              int
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaBaseURL     string
	OllamaModel       string
}

type LLMConfig struct {
	Provider      string // "groq" or "ollama"
	Model         string
	OllamaBaseURL string
}

type APIKeys struct {
	Groq         string
	GoogleGemini string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
			TemplatesDir:       getEnv("TEMPLATES_DIR", "./web/templates"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "career_counseling.db"),
		},
		Rag: RagConfig{
			PdfPath:           getEnv("RAG_PDF_PATH", "academicdisciplinesoutline.pdf"),
			IndexPath:         getEnv("RAG_INDEX_PATH", "vectorsdata/academic_index.json"),
			ChunkSize:         getEnvAsInt("RAG_CHUNK_SIZE", 2000),
			ChunkOverlap:      getEnvAsInt("RAG_CHUNK_OVERLAP", 400),
			TopK:              getEnvAsInt("RAG_TOP_K", 3),
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
		},
		Llm: LLMConfig{
			Provider:      getEnv("LLM_PROVIDER", "groq"),
			Model:         getEnv("LLM_MODEL", "llama-3.1-8b-instant"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Keys: APIKeys{
			Groq:         getEnv("GROQ_API_KEY", ""),
			GoogleGemini: getEnv("GOOGLE_API_KEY", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
