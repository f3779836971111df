package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/client"
	"taskboard-api/internal/handler"
	"taskboard-api/internal/metrics"
	"taskboard-api/internal/middleware"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/service"
)

// Config carries everything Setup needs to wire the HTTP surface
type Config struct {
	DB             *gorm.DB
	Logger         *zap.Logger
	JWTSecret      string
	BasePath       string
	Metrics        *metrics.Metrics
	Storage        client.ObjectStorage
	Redis          *redis.Client
	CacheTTL       time.Duration
	AllowedOrigins []string
}

// Setup builds the gin engine: repositories, services, handlers, and routes
func Setup(cfg Config) *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.Recovery(cfg.Logger))
	engine.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		engine.Use(middleware.Metrics(cfg.Metrics))
	}

	boardRepo := repository.NewBoardRepository(cfg.DB)
	columnRepo := repository.NewColumnRepository(cfg.DB)
	cardRepo := repository.NewCardRepository(cfg.DB)

	cache := service.NewBoardCache(cfg.Redis, cfg.CacheTTL, cfg.Logger)
	ownership := service.NewOwnershipValidator(boardRepo, columnRepo, cardRepo, cfg.Logger)

	boardService := service.NewBoardService(cfg.DB, boardRepo, columnRepo, cardRepo, cfg.Storage, cache, cfg.Metrics, cfg.Logger)
	columnService := service.NewColumnService(cfg.DB, boardRepo, columnRepo, cardRepo, cache, cfg.Metrics, cfg.Logger)
	cardService := service.NewCardService(boardRepo, columnRepo, cardRepo, ownership, cfg.Storage, cache, cfg.Metrics, cfg.Logger)

	boardHandler := handler.NewBoardHandler(boardService, cfg.Logger)
	columnHandler := handler.NewColumnHandler(columnService, cfg.Logger)
	cardHandler := handler.NewCardHandler(cardService, cfg.Logger)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	v1 := engine.Group(cfg.BasePath + "/v1")
	v1.Use(middleware.Auth(cfg.JWTSecret))
	{
		boards := v1.Group("/boards")
		{
			boards.POST("", boardHandler.CreateBoard)
			boards.GET("", boardHandler.GetBoards)
			boards.GET("/:boardId", boardHandler.GetBoardDetails)
			boards.PUT("/:boardId", boardHandler.UpdateBoard)
			boards.PUT("/:boardId/background", boardHandler.UpdateBoardBackground)
			boards.PUT("/:boardId/move-card", boardHandler.MoveCard)
			boards.DELETE("/:boardId", boardHandler.DeleteBoard)
		}

		columns := v1.Group("/columns")
		{
			columns.POST("", columnHandler.CreateColumn)
			columns.PUT("/:columnId", columnHandler.UpdateColumn)
			columns.DELETE("/:columnId", columnHandler.DeleteColumn)
		}

		cards := v1.Group("/cards")
		{
			cards.POST("", cardHandler.CreateCard)
			cards.PUT("/:cardId", cardHandler.UpdateCard)
			cards.PUT("/:cardId/cover", cardHandler.UpdateCardCover)
			cards.DELETE("/:cardId", cardHandler.DeleteCard)
			cards.POST("/:cardId/checklists", cardHandler.CreateChecklist)
			cards.POST("/:cardId/checklists/:checklistId/items", cardHandler.AddChecklistItem)
			cards.DELETE("/:cardId/checklists/:checklistId", cardHandler.DeleteChecklist)
		}
	}

	return engine
}
