// report 是报表的命令行入口，把结果以 JSON 打印到标准输出。
//
//	report [-config path] [-timeout 30s] <command> [flags]
//
// 退出码: 0 成功，1 数据库错误，2 参数错误，4 数据完整性错误。
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	sharedCore "github.com/Xushengqwer/go-common/core"
	"github.com/joho/godotenv"

	appConfig "github.com/Xushengqwer/report_service/config"
	"github.com/Xushengqwer/report_service/dependencies"
	"github.com/Xushengqwer/report_service/repo/sqlstore"
	"github.com/Xushengqwer/report_service/service"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	global := flag.NewFlagSet("report", flag.ContinueOnError)
	configFile := global.String("config", "config/config.development.yaml", "Path to configuration file")
	timeout := global.Duration("timeout", 30*time.Second, "整个命令的超时时间")
	global.Usage = func() {
		fmt.Fprintf(global.Output(), "usage: report [-config path] [-timeout d] <%s> [flags]\n", commandNames())
		global.PrintDefaults()
	}
	if err := global.Parse(args); err != nil {
		return exitValidation
	}
	if global.NArg() == 0 {
		global.Usage()
		return exitValidation
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("WARN: 加载 .env 失败: %v", err)
	}

	var cfg appConfig.ReportConfig
	if err := sharedCore.LoadConfig(*configFile, &cfg); err != nil {
		log.Printf("加载配置失败 (%s): %v", *configFile, err)
		return exitStore
	}
	logger, err := sharedCore.NewZapLogger(cfg.ZapConfig)
	if err != nil {
		log.Printf("初始化 ZapLogger 失败: %v", err)
		return exitStore
	}
	defer func() { _ = logger.Logger().Sync() }()

	// CLI 只读，不做迁移
	dbCfg := cfg.DatabaseConfig
	dbCfg.AutoMigrate = false
	db, err := dependencies.InitDatabase(&dbCfg, cfg.GormLogConfig, logger)
	if err != nil {
		log.Printf("连接数据库失败: %v", err)
		return exitStore
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	zl := logger.Logger()
	postRepo := sqlstore.NewPostRepository(db, zl)
	userRepo := sqlstore.NewUserRepository(db, zl)
	svc := services{
		ranker:      service.NewRankerService(postRepo, userRepo, zl),
		activity:    service.NewActivityService(postRepo, userRepo, cfg.ReportSettings.HydrationConcurrency, zl),
		rangeFilter: service.NewRangeFilterService(postRepo, userRepo, zl),
		search:      service.NewContentSearchService(postRepo, zl),
		comments:    service.NewCommentFeedService(sqlstore.NewCommentRepository(db, zl), zl),
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	err = execute(ctx, svc, global.Arg(0), global.Args()[1:], os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return exitCode(err)
}
