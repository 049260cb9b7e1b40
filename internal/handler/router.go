package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"creator-sponsorship/internal/handler/api"
	"creator-sponsorship/internal/handler/middleware"
	"creator-sponsorship/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, wizardHandler *api.WizardHandler, creatorHandler *api.CreatorHandler, healthHandler *api.HealthHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, wizardHandler, creatorHandler, healthHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, wizardHandler *api.WizardHandler, creatorHandler *api.CreatorHandler, healthHandler *api.HealthHandler) {
	engine.GET("/health", healthHandler.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		wizard := apiGroup.Group("/wizard/:id")
		{
			addRoutes(wizard, []route{
				{Method: http.MethodGet, Path: "", Handler: wizardHandler.Get},
				{Method: http.MethodDelete, Path: "", Handler: wizardHandler.Cancel},
				{Method: http.MethodPost, Path: "/search", Handler: wizardHandler.Search},
				{Method: http.MethodPost, Path: "/select", Handler: wizardHandler.Select},
				{Method: http.MethodPost, Path: "/seasons/:season", Handler: wizardHandler.ViewSeason},
				{Method: http.MethodPost, Path: "/episodes/toggle", Handler: wizardHandler.ToggleEpisode},
				{Method: http.MethodPost, Path: "/episodes/select-all", Handler: wizardHandler.SelectAll},
				{Method: http.MethodPost, Path: "/priority", Handler: wizardHandler.TogglePriority},
				{Method: http.MethodPut, Path: "/buyer", Handler: wizardHandler.SetBuyer},
				{Method: http.MethodPut, Path: "/message", Handler: wizardHandler.SetMessage},
				{Method: http.MethodPost, Path: "/next", Handler: wizardHandler.Next},
				{Method: http.MethodPost, Path: "/back", Handler: wizardHandler.Back},
				{Method: http.MethodPost, Path: "/restart", Handler: wizardHandler.Restart},
				{Method: http.MethodPost, Path: "/submit", Handler: wizardHandler.Submit},
			})
		}

		creators := apiGroup.Group("/creators/:username")
		creators.Use(middleware.RequireCreatorUsername())
		{
			addRoutes(creators, []route{
				{Method: http.MethodPost, Path: "/wizard", Handler: wizardHandler.Start},
				{Method: http.MethodGet, Path: "/price-list", Handler: creatorHandler.GetPriceList},
				{Method: http.MethodPut, Path: "/price-list", Handler: creatorHandler.UpdatePriceList},
				{Method: http.MethodGet, Path: "/orders", Handler: creatorHandler.ListOrders},
				{Method: http.MethodGet, Path: "/orders/code/:code", Handler: creatorHandler.GetOrderByCode},
				{Method: http.MethodGet, Path: "/orders/:orderId", Handler: creatorHandler.GetOrder},
				{Method: http.MethodPatch, Path: "/orders/:orderId/status", Handler: creatorHandler.UpdateOrderStatus},
				{Method: http.MethodGet, Path: "/ledger", Handler: creatorHandler.ListLedger},
				{Method: http.MethodGet, Path: "/ledger/:contentId", Handler: creatorHandler.GetLedgerEntry},
				{Method: http.MethodGet, Path: "/notifications", Handler: creatorHandler.ListNotifications},
				{Method: http.MethodPost, Path: "/notifications/:id/read", Handler: creatorHandler.MarkNotificationRead},
			})
		}
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
