package bootstrap

import (
	"context"
	"log"

	"ai-counselor-be/internal/config"
	"ai-counselor-be/internal/controller"
	"ai-counselor-be/internal/pkg/logger"
	"ai-counselor-be/internal/pkg/serverutils"
	"ai-counselor-be/internal/repository/noop"
	"ai-counselor-be/internal/repository/unitofwork"
	"ai-counselor-be/internal/service"
	"ai-counselor-be/pkg/embedding"
	"ai-counselor-be/pkg/events"
	llmFactory "ai-counselor-be/pkg/llm/factory"
	"ai-counselor-be/pkg/vectorindex"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	PageController controller.IPageController
	AuthController controller.IAuthController
	ChatController controller.IChatController
	UserController controller.IUserController

	// Shared infrastructure
	SessionManager *serverutils.SessionManager
	Logger         logger.ILogger

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

// NewContainer wires the whole application. db may be nil, in which case
// every persistence operation runs against the no-op stand-in and the app
// still serves chat with nothing written.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	var uowFactory unitofwork.RepositoryFactory
	if db != nil {
		uowFactory = unitofwork.NewRepositoryFactory(db)
	} else {
		uowFactory = noop.NewFactory()
		sysLogger.Warn("BOOTSTRAP", "Database unavailable, persistence is disabled", nil)
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Components
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Rag.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Rag.OllamaBaseURL, cfg.Rag.OllamaModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Rag.OllamaModel)
	} else if cfg.Keys.GoogleGemini != "" {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	} else {
		sysLogger.Warn("BOOTSTRAP", "No embedding credentials, retrieval is disabled", nil)
	}

	var retriever service.Retriever
	if embeddingProvider != nil {
		idx, err := vectorindex.LoadOrBuild(context.Background(), vectorindex.BuildConfig{
			PdfPath:      cfg.Rag.PdfPath,
			IndexPath:    cfg.Rag.IndexPath,
			ChunkSize:    cfg.Rag.ChunkSize,
			ChunkOverlap: cfg.Rag.ChunkOverlap,
			ModelInfo:    cfg.Rag.EmbeddingProvider,
		}, embeddingProvider)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "Vector index unavailable, answering without context", map[string]interface{}{"error": err.Error()})
		}
		if idx != nil {
			retriever = idx
		}
	}

	llmProvider, err := llmFactory.NewLLMProvider(
		cfg.Llm.Provider,
		cfg.Llm.Model,
		cfg.Llm.OllamaBaseURL,
		cfg.Keys.Groq,
	)
	if err != nil {
		sysLogger.Warn("BOOTSTRAP", "LLM provider unavailable, serving fixed responses", map[string]interface{}{"error": err.Error()})
		llmProvider = nil
	}

	// 4. Services
	publisherService := service.NewPublisherService(events.TopicChatUsage, pubSub)
	consumerService := service.NewConsumerService(pubSub, events.TopicChatUsage, uowFactory, sysLogger)

	counselorService := service.NewCounselorService(llmProvider, retriever, cfg.Rag.TopK, sysLogger)
	authService := service.NewAuthService(uowFactory)
	chatService := service.NewChatService(uowFactory, counselorService, publisherService, sysLogger)
	userService := service.NewUserService(uowFactory)

	// 5. HTTP session state
	sessionManager := serverutils.NewSessionManager()

	return &Container{
		PageController: controller.NewPageController(chatService, sessionManager),
		AuthController: controller.NewAuthController(authService, chatService, sessionManager),
		ChatController: controller.NewChatController(chatService, sessionManager),
		UserController: controller.NewUserController(userService, sessionManager),

		SessionManager:  sessionManager,
		Logger:          sysLogger,
		ConsumerService: consumerService,
	}
}
