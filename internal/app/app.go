// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/haierkeys/link-moodboard-service/internal/dao"
	"github.com/haierkeys/link-moodboard-service/internal/domain"
	"github.com/haierkeys/link-moodboard-service/internal/service"
	pkgapp "github.com/haierkeys/link-moodboard-service/pkg/app"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger
	DB     *gorm.DB
	Dao    *dao.Dao

	// Repository 层
	ItemRepo domain.ItemRepository

	// Service 层
	ItemService    service.ItemService
	PreviewService service.PreviewService

	// 启动时间，健康检查用
	StartTime time.Time

	// 关闭控制
	shutdownCh   chan struct{}
	shutdownOnce sync.Once
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
// db: 数据库连接（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger, db *gorm.DB) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	a := &App{
		config:     cfg,
		logger:     logger,
		DB:         db,
		StartTime:  time.Now(),
		shutdownCh: make(chan struct{}),
	}

	// 初始化 DAO（使用依赖注入）
	a.Dao = dao.New(db, context.Background(), dao.WithLogger(logger))

	// 初始化 Repository 层
	a.ItemRepo = dao.NewItemRepository(a.Dao)

	// 创建 ServiceConfig（从 AppConfig 提取 Service 层需要的配置）
	svcConfig := &service.ServiceConfig{
		Preview: service.PreviewServiceConfig{
			FetchTimeout: cfg.Preview.FetchTimeout,
			UserAgent:    cfg.Preview.UserAgent,
			MaxBodySize:  cfg.GetMaxBodySize(),
		},
	}

	// 初始化 Service 层（依赖注入）
	a.PreviewService = service.NewPreviewService(&svcConfig.Preview, logger)
	a.ItemService = service.NewItemService(a.ItemRepo, a.PreviewService, logger)

	logger.Info("App container initialized successfully")

	return a, nil
}

// Close 释放应用容器持有的资源
func (a *App) Close() error {
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		a.logger.Info("Database connection closed")
	}
	return nil
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Version 获取版本信息
func (a *App) Version() pkgapp.VersionInfo {
	return pkgapp.VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}

// Shutdown 优雅关闭应用容器
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("App container shutting down...")

	a.shutdownOnce.Do(func() {
		close(a.shutdownCh)
	})

	if err := a.Close(); err != nil {
		return err
	}

	a.logger.Info("App container shutdown completed successfully")
	return nil
}

// IsShuttingDown 检查应用是否正在关闭
func (a *App) IsShuttingDown() bool {
	select {
	case <-a.shutdownCh:
		return true
	default:
		return false
	}
}
