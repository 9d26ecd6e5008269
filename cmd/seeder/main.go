package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/report_service/config"
	"github.com/Xushengqwer/report_service/dependencies"
)

func main() {
	var configFile string
	opts := SeedOptions{}
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&opts.Users, "users", 500, "要生成的用户数量")
	flag.IntVar(&opts.Topics, "topics", 10, "要生成的话题数量")
	flag.IntVar(&opts.Posts, "posts", 2000, "要生成的帖子数量")
	flag.IntVar(&opts.Comments, "comments", 5000, "要生成的评论数量")
	flag.IntVar(&opts.PublishedRatio, "published", 80, "已发布帖子所占百分比")
	flag.Int64Var(&opts.RandSeed, "seed", 0, "随机种子，0 表示每次不同")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("加载 .env 失败: %v\n", err)
	}

	var cfg appConfig.ReportConfig
	if err := core.LoadConfig(configFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", configFile, err)
		os.Exit(1)
	}

	logger, err := core.NewZapLogger(cfg.ZapConfig)
	if err != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Logger().Sync() }()

	// seeder 总是需要表结构
	dbCfg := cfg.DatabaseConfig
	dbCfg.AutoMigrate = true
	db, err := dependencies.InitDatabase(&dbCfg, cfg.GormLogConfig, logger)
	if err != nil {
		logger.Fatal("初始化数据库失败 (Seeder)", zap.Error(err))
	}

	startTime := time.Now()
	result, err := Seed(context.Background(), db, opts, logger.Logger())
	if err != nil {
		logger.Fatal("数据填充失败", zap.Error(err))
	}
	fmt.Printf("数据填充完成: %+v，耗时 %v\n", result, time.Since(startTime))
}
