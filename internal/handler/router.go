package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nexhr/orgassist/internal/assistant/llm"
	"github.com/nexhr/orgassist/internal/assistant/memory"
	"github.com/nexhr/orgassist/internal/assistant/prompt"
	"github.com/nexhr/orgassist/internal/config"
	"github.com/nexhr/orgassist/internal/intent"
	"github.com/nexhr/orgassist/internal/middleware"
	"github.com/nexhr/orgassist/internal/pkg/cache"
	"github.com/nexhr/orgassist/internal/repository"
	"github.com/nexhr/orgassist/internal/service"
)

func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())

	r.GET("/health", healthCheck)

	orgCache, err := cache.New(time.Duration(cfg.CacheTTLSeconds) * time.Second)
	if err != nil {
		return nil, err
	}

	// Repositories
	orgRepo := repository.NewOrganizationRepository(db)
	personRepo := repository.NewPersonRepository(db)
	deptRepo := repository.NewDepartmentRepository(db)
	relRepo := repository.NewRelationshipRepository(db)
	docRepo := repository.NewDocumentRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)

	// Conversation history: Redis when configured, Postgres otherwise.
	var store memory.Store
	if cfg.RedisURL != "" {
		redisStore, err := memory.NewRedisStoreFromURL(cfg.RedisURL, 30*time.Minute)
		if err != nil {
			log.Printf("Redis unavailable, falling back to Postgres history: %v", err)
			store = memory.NewPostgresStore(db)
		} else {
			store = redisStore
		}
	} else {
		store = memory.NewPostgresStore(db)
	}
	mem := memory.NewManager(store, cfg.ChatHistoryWindow)

	llmClient, err := llm.NewClient(context.Background(), &llm.ProviderConfig{
		Kind:    llm.ProviderKind(cfg.LLMProvider),
		APIKey:  cfg.LLMAPIKey,
		Model:   cfg.LLMModel,
		BaseURL: cfg.LLMBaseURL,
	})
	if err != nil {
		return nil, err
	}
	if !llmClient.Configured() {
		log.Println("No LLM credential configured; chat replies will be placeholders")
	}

	// Core pipeline
	directorySvc := service.NewDirectoryService(personRepo, deptRepo, relRepo, docRepo, orgCache, nil)
	contextSvc := service.NewContextService(intent.NewDetector(), directorySvc)
	promptBuilder := prompt.NewBuilder(personRepo, deptRepo, relRepo, taskRepo, settingsRepo, calendarRepo)
	chatSvc := service.NewChatService(contextSvc, promptBuilder, mem, llmClient)

	// Admin services
	orgSvc := service.NewOrganizationService(orgRepo, orgCache)
	peopleSvc := service.NewPeopleService(personRepo, orgCache)
	deptSvc := service.NewDepartmentService(deptRepo, orgCache)
	relSvc := service.NewRelationshipService(relRepo, orgCache)
	docSvc := service.NewDocumentService(docRepo, orgCache)
	settingsSvc := service.NewSettingsService(settingsRepo, orgCache)

	// Handlers
	orgHandler := NewOrganizationHandler(orgSvc)
	chatHandler := NewChatHandler(chatSvc)
	peopleHandler := NewPeopleHandler(peopleSvc, directorySvc)
	deptHandler := NewDepartmentHandler(deptSvc)
	relHandler := NewRelationshipHandler(relSvc)
	docHandler := NewDocumentHandler(docSvc)
	settingsHandler := NewSettingsHandler(settingsSvc)

	// Organization CRUD is unscoped: these routes create the ids every other
	// route is scoped by.
	orgs := r.Group("/api/v1/organizations")
	{
		orgs.GET("", orgHandler.List)
		orgs.POST("", orgHandler.Create)
		orgs.GET("/:id", orgHandler.Get)
		orgs.PUT("/:id", orgHandler.Update)
		orgs.DELETE("/:id", orgHandler.Delete)
	}

	api := r.Group("/api/v1")
	api.Use(middleware.OrgScope())
	{
		api.POST("/chat/:personId", chatHandler.ChatWithPerson)
		api.POST("/hr-assistant", chatHandler.AskHR)

		api.GET("/people", peopleHandler.List)
		api.POST("/people", peopleHandler.Create)
		api.GET("/people/:id", peopleHandler.Get)
		api.PUT("/people/:id", peopleHandler.Update)
		api.DELETE("/people/:id", peopleHandler.Delete)
		api.GET("/people/:id/hierarchy", peopleHandler.Hierarchy)
		api.GET("/people/:id/chain", peopleHandler.Chain)
		api.POST("/people/compatibility", peopleHandler.Compatibility)

		api.GET("/departments", deptHandler.List)
		api.POST("/departments", deptHandler.Create)
		api.PUT("/departments/:id", deptHandler.Update)
		api.DELETE("/departments/:id", deptHandler.Delete)

		api.GET("/relationships", relHandler.List)
		api.POST("/relationships", relHandler.Create)
		api.DELETE("/relationships/:id", relHandler.Delete)

		api.GET("/documents", docHandler.Search)
		api.POST("/documents", docHandler.Create)
		api.DELETE("/documents/:id", docHandler.Delete)

		api.GET("/settings/:personId", settingsHandler.Get)
		api.PUT("/settings/:personId", settingsHandler.Update)
	}

	return r, nil
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
