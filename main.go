package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/swaggo/swag" // 导入 swag

	"skill_sync/config"
	_ "skill_sync/docs" // 导入 swagger 文档
	"skill_sync/handlers"
	"skill_sync/logger"
	"skill_sync/repository"
	"skill_sync/scheduler"
	"skill_sync/services"
)

func main() {
	cfg := config.Load()

	// 初始化日志系统
	if err := logger.Init(cfg); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	logger.Info("日志系统初始化成功", "level", cfg.Log.Level, "format", cfg.Log.Format, "output", cfg.Log.Output)

	// 加载学习资源目录，失败时退回内置资源表，不影响启动
	if err := services.LoadCatalog(cfg); err != nil {
		logger.Warn("学习资源目录加载失败，使用内置资源表", "error", err)
	}

	// 生成初始用户目录
	count := repository.InitDirectory(cfg)
	logger.Info("用户目录初始化完成",
		"count", count,
		"seed", cfg.Directory.Seed,
		"top_n", cfg.Matching.TopN)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	handlers.RegisterRoutes(r, cfg)

	// 启动定时刷新任务（可选）
	scheduler.Start(cfg)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("服务器启动", "address", serverAddr)
	logger.Info("Swagger文档可访问", "url", fmt.Sprintf("http://%s/swagger/index.html", serverAddr))
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", cfg.Server.Port), r))
}
