// @title           StoryReel Backend API
// @version         1.0.0
// @description     Backend API for AI-assisted video creation: script and scene generation, speech synthesis, stock footage matching, subtitle export and simulated render jobs with polling.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"log"
	"net/http"
	"net/url"
	"time"

	"storyreel-backend/docs"
	"storyreel-backend/internal/assets"
	"storyreel-backend/internal/config"
	"storyreel-backend/internal/gemini"
	"storyreel-backend/internal/handlers"
	"storyreel-backend/internal/middleware"
	"storyreel-backend/internal/render"
	"storyreel-backend/internal/script"
	"storyreel-backend/internal/services"
	"storyreel-backend/internal/stock"
	"storyreel-backend/internal/store"
	"storyreel-backend/internal/tts"
	"storyreel-backend/internal/visuals"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	// Project persistence: a JSON key-value store on disk
	kv, err := store.NewKV(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize data store: %v", err)
	}
	projectStore := store.NewProjectStore(kv)

	// Generation clients
	geminiClient := gemini.NewClient(cfg.GeminiAPIBaseURL, cfg.GeminiAPIKey)
	if !geminiClient.Configured() {
		log.Println("Warning: GEMINI_API_KEY not set. Script generation will fall back to chunked input.")
	}
	scriptGenerator := script.NewGenerator(geminiClient)
	ttsClient := tts.NewClient(cfg.TTSAPIBaseURL, cfg.TTSAPIKey)
	imageGenerator := visuals.NewImageGenerator()

	// Asset storage: Supabase bucket when configured, local disk otherwise
	var assetStorage assets.Storage
	if cfg.SupabaseStorageEnabled() {
		assetStorage = assets.NewSupabaseStorage(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseStorageBucket)
		log.Println("Asset storage: Supabase bucket " + cfg.SupabaseStorageBucket)
	} else {
		localStorage, err := assets.NewLocalStorage(cfg.AssetsDir, cfg.BaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize asset storage: %v", err)
		}
		assetStorage = localStorage
		log.Println("Asset storage: local directory " + cfg.AssetsDir)
	}

	// Stock provider chain: Pexels -> Pixabay -> built-in catalog
	var providers []stock.Provider
	if cfg.PexelsAPIKey != "" {
		providers = append(providers, stock.NewPexelsProvider(cfg.PexelsAPIKey))
	}
	if cfg.PixabayAPIKey != "" {
		providers = append(providers, stock.NewPixabayProvider(cfg.PixabayAPIKey))
	}
	mockCatalog, err := stock.NewMockCatalog()
	if err != nil {
		log.Fatalf("Failed to load stock catalog: %v", err)
	}
	var keywordGen stock.TextGenerator
	if geminiClient.Configured() {
		keywordGen = geminiClient
	}
	matcher := stock.NewMatcher(providers, mockCatalog, keywordGen)

	// Render engine with its job store
	jobStore := render.NewJobStore(render.DefaultRetention)
	jobStore.StartSweeper(time.Minute)
	defer jobStore.Close()
	engine := render.NewEngine(jobStore, nil)

	automation := services.NewAutomationService(
		projectStore, scriptGenerator, ttsClient, assetStorage, matcher, imageGenerator, engine,
	)

	// Initialize handlers
	projectsHandler := handlers.NewProjectsHandler(projectStore, assetStorage)
	generateHandler := handlers.NewGenerateHandler(scriptGenerator, geminiClient)
	mediaHandler := handlers.NewMediaHandler(projectStore, automation)
	renderHandler := handlers.NewRenderHandler(projectStore, engine)
	stockHandler := handlers.NewStockHandler(matcher)
	subtitlesHandler := handlers.NewSubtitlesHandler()
	voicesHandler := handlers.NewVoicesHandler()

	// Setup router
	router := gin.Default()

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	// Locally stored generated assets
	router.Static("/assets", cfg.AssetsDir)

	// Generation relay (no auth: a stateless pass-through boundary)
	router.POST("/api/v1/relay/generate", generateHandler.Relay)

	// API routes
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))

	// Project routes
	api.POST("/projects", projectsHandler.CreateProject)
	api.GET("/projects", projectsHandler.ListProjects)
	api.GET("/projects/:project_id", projectsHandler.GetProject)
	api.PUT("/projects/:project_id", projectsHandler.SaveProject)
	api.DELETE("/projects/:project_id", projectsHandler.DeleteProject)
	api.GET("/projects/:project_id/subtitles.srt", projectsHandler.GetProjectSubtitles)

	// Generation
	api.POST("/generate/script", generateHandler.GenerateScript)
	api.POST("/projects/:project_id/scenes/:scene_id/audio", mediaHandler.GenerateSceneAudio)
	api.POST("/projects/:project_id/scenes/:scene_id/visual", mediaHandler.GenerateSceneVisual)
	api.POST("/projects/:project_id/audio", mediaHandler.BatchAudio)
	api.POST("/projects/:project_id/visuals", mediaHandler.BatchVisuals)
	api.POST("/projects/:project_id/automate", mediaHandler.Automate)

	// Render jobs
	api.POST("/projects/:project_id/render", renderHandler.StartRender)
	api.GET("/render/:job_id", renderHandler.GetJobStatus)

	// Stock, subtitles, voices
	api.GET("/stock/search", stockHandler.Search)
	api.POST("/subtitles/export", subtitlesHandler.Export)
	api.GET("/voices", voicesHandler.GetVoices)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
