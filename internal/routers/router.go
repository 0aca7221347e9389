// Package routers HTTP 路由注册
package routers

import (
	"time"

	"github.com/haierkeys/link-moodboard-service/internal/app"
	"github.com/haierkeys/link-moodboard-service/internal/middleware"
	"github.com/haierkeys/link-moodboard-service/internal/routers/api_router"
	"github.com/haierkeys/link-moodboard-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"go.uber.org/zap"
)

// methodLimiters 抓取类接口限流规则
// 元数据抓取会发起出站 HTTP 请求，限制频率避免被目标站点封禁
var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/api/items/ingest",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
	limiter.BucketRule{
		Key:          "/api/preview",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
)

// NewRouter 创建并配置 Gin 路由引擎
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator, logger *zap.Logger) *gin.Engine {
	cfg := appContainer.Config()

	r := gin.New()
	r.Use(middleware.Cors())
	r.NoRoute(middleware.NoFound())

	itemHandler := api_router.NewItemHandler(appContainer)
	previewHandler := api_router.NewPreviewHandler(appContainer)
	versionHandler := api_router.NewVersionHandler(appContainer)
	healthHandler := api_router.NewHealthHandler(appContainer)

	// 健康检查不走 API 中间件链
	r.GET("/health", healthHandler.Check)

	api := r.Group("/api")

	api.Use(middleware.AppInfoWithConfig(app.Name, appContainer.Version().Version))
	if cfg.Server.RunMode == "debug" {
		api.Use(gin.Logger())
	}
	api.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header))
	api.Use(middleware.RateLimiter(methodLimiters))
	api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
	api.Use(middleware.LangWithTranslator(uni))
	api.Use(middleware.AccessLogWithLogger(logger))
	api.Use(middleware.RecoveryWithLogger(logger))

	{
		api.POST("/items/ingest", itemHandler.Ingest)
		api.POST("/items", itemHandler.Create)
		api.GET("/items", itemHandler.List)
		api.PUT("/items/:id/note", itemHandler.UpdateNote)
		api.DELETE("/items/:id", itemHandler.Delete)

		api.GET("/preview", previewHandler.Get)

		api.GET("/version", versionHandler.ServerVersion)
	}

	return r
}
