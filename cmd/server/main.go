package main

import (
	"flag"
	"fmt"
	"os"
	"syscall"

	"github.com/senghong-shop/internal/app"
	"github.com/senghong-shop/internal/config"
	"github.com/senghong-shop/internal/logger"
	"github.com/senghong-shop/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset     = "\033[0m"
	ansiBold      = "\033[1m"
	ansiDim       = "\033[2m"
	ansiGreen     = "\033[32m"
	ansiCyan      = "\033[36m"
	ansiBrightMag = "\033[95m"
)

func main() {
	// 解析命令行参数
	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "启动模式: all (默认), api, worker")
	flag.Parse()

	printStartupBanner()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	// 初始化数据库（仅用于结账交接记录，可关闭）
	if cfg.Database.Enabled {
		if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
			MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
			MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
			ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		}); err != nil {
			stdLog.Fatalf("数据库初始化失败: %v", err)
		}
		if err := models.AutoMigrate(); err != nil {
			stdLog.Fatalf("数据库迁移失败: %v", err)
		}
	} else {
		stdLog.Printf("数据库未启用，结账交接记录将不会保存")
	}

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiBrightMag + "╔══════════════════════════════════════════════╗" + ansiReset)
	fmt.Println(ansiBrightMag + "║          🛍  SengHong Store API 启动中          ║" + ansiReset)
	fmt.Println(ansiBrightMag + "╚══════════════════════════════════════════════╝" + ansiReset)
	fmt.Println(ansiCyan + "███████╗███████╗███╗   ██╗ ██████╗ ██╗  ██╗ ██████╗ ███╗   ██╗ ██████╗ " + ansiReset)
	fmt.Println(ansiCyan + "██╔════╝██╔════╝████╗  ██║██╔════╝ ██║  ██║██╔═══██╗████╗  ██║██╔════╝ " + ansiReset)
	fmt.Println(ansiCyan + "███████╗█████╗  ██╔██╗ ██║██║  ███╗███████║██║   ██║██╔██╗ ██║██║  ███╗" + ansiReset)
	fmt.Println(ansiCyan + "╚════██║██╔══╝  ██║╚██╗██║██║   ██║██╔══██║██║   ██║██║╚██╗██║██║   ██║" + ansiReset)
	fmt.Println(ansiCyan + "███████║███████╗██║ ╚████║╚██████╔╝██║  ██║╚██████╔╝██║ ╚████║╚██████╔╝" + ansiReset)
	fmt.Println(ansiCyan + "╚══════╝╚══════╝╚═╝  ╚═══╝ ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚═╝  ╚═══╝ ╚═════╝ " + ansiReset)
	fmt.Println(ansiGreen + ansiBold + "Catalog from sheet · Checkout via Telegram" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}
