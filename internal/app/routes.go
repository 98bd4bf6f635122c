package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"ControleGastos/internal/cache"
	"ControleGastos/internal/config"
	"ControleGastos/internal/handlers"
	"ControleGastos/internal/repo"
	"ControleGastos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine. rdb may be nil.
func Setup(r *gin.Engine, cfg config.Config, store *repo.Store, rdb *redis.Client, log *slog.Logger) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg, store, rdb))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(http.StatusFound, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	api := r.Group("/api")

	var summaryCache *cache.SummaryCache
	if rdb != nil {
		summaryCache = cache.NewSummaryCache(rdb, cfg.Redis.DefaultTTL.Duration())
	}

	userSvc := service.NewUserService(store.Users, store.Transactions, summaryCache, log)
	registerUserRoutes(api, handlers.NewUserHandler(userSvc, log))

	txSvc := service.NewTransactionService(store.Users, store.Transactions, summaryCache, log)
	registerTransactionRoutes(api, handlers.NewTransactionHandler(txSvc, log))
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Controle de Gastos API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"storage": cfg.Storage.Driver,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api",
		})
	}
}

func healthHandler(cfg config.Config, store *repo.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "env": cfg.App.Env, "error": "storage unavailable"})
			return
		}
		cacheState := "disabled"
		if rdb != nil {
			cacheState = "ok"
			if err := rdb.Ping(ctx).Err(); err != nil {
				cacheState = "unavailable"
			}
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "env": cfg.App.Env, "cache": cacheState})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerUserRoutes(api *gin.RouterGroup, h *handlers.UserHandler) {
	api.GET("/usuario", h.List)
	api.POST("/usuario", h.Create)
	api.PUT("/usuario", h.Update)
	api.GET("/usuario/totais", h.Totals)
	api.GET("/usuario/:identifier", h.Get)
	api.DELETE("/usuario/:identifier", h.Delete)
}

func registerTransactionRoutes(api *gin.RouterGroup, h *handlers.TransactionHandler) {
	api.GET("/transacao", h.List)
	api.POST("/transacao", h.Create)
	api.GET("/transacao/usuario/:identifier", h.ListByUser)
}
