package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pos-gateway/internal/handler/api"
	"pos-gateway/internal/handler/middleware"
	"pos-gateway/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, posHandler *api.PosHandler, catalogHandler *api.CatalogHandler, memberHandler *api.MemberHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, posHandler, catalogHandler, memberHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, posHandler *api.PosHandler, catalogHandler *api.CatalogHandler, memberHandler *api.MemberHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		pos := apiGroup.Group("/pos")
		{
			addRoutes(pos, []route{
				{Method: http.MethodGet, Path: "/cart", Handler: posHandler.GetCart},
				{Method: http.MethodDelete, Path: "/cart", Handler: posHandler.ClearCart},
				{Method: http.MethodPost, Path: "/cart/lines", Handler: posHandler.AddCartLine},
				{Method: http.MethodPatch, Path: "/cart/lines/:productId", Handler: posHandler.SetLineQuantity},
				{Method: http.MethodDelete, Path: "/cart/lines/:productId", Handler: posHandler.RemoveCartLine},
				{Method: http.MethodPut, Path: "/member", Handler: posHandler.AttachMember},
				{Method: http.MethodPut, Path: "/search", Handler: posHandler.SetSearchQuery},
				{Method: http.MethodGet, Path: "/search", Handler: posHandler.GetSearchResults},
				{Method: http.MethodPost, Path: "/checkout", Handler: posHandler.Checkout},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/products", Handler: catalogHandler.SearchProducts},
			{Method: http.MethodGet, Path: "/promotions", Handler: catalogHandler.ListPromotions},
			{Method: http.MethodPost, Path: "/members", Handler: memberHandler.RegisterMember},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
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

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
