package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"
	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/report_service/config"
	"github.com/Xushengqwer/report_service/constant"
	"github.com/Xushengqwer/report_service/controller"
	"github.com/Xushengqwer/report_service/dependencies"
	_ "github.com/Xushengqwer/report_service/docs"
	"github.com/Xushengqwer/report_service/mq/consumer"
	"github.com/Xushengqwer/report_service/mq/producer"
	redisrepo "github.com/Xushengqwer/report_service/repo/redis"
	"github.com/Xushengqwer/report_service/repo/sqlstore"
	"github.com/Xushengqwer/report_service/router"
	"github.com/Xushengqwer/report_service/service"
	"github.com/Xushengqwer/report_service/tasks"
)

// @title           Report Service API
// @version         1.0
// @description     报表服务，提供作者排行、活跃作者、时间区间筛选与帖子内容模糊搜索。

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8086
// @schemes http https
func main() {
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 0. .env 只在本地开发时存在，缺失不是错误
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("WARN: 加载 .env 失败: %v", err)
	}

	// 1. 加载配置
	var cfg appConfig.ReportConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 2. 初始化 Logger
	logger, loggerErr := sharedCore.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		if err := logger.Logger().Sync(); err != nil {
			log.Printf("WARN: ZapLogger Sync 失败: %v\n", err)
		}
	}()
	zl := logger.Logger()

	// 3. 初始化 TracerProvider
	if cfg.TracerConfig.Enabled {
		tracerShutdown, err := sharedTracing.InitTracerProvider(constant.ServiceName, constant.ServiceVersion, cfg.TracerConfig)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			}
		}()
		logger.Info("分布式追踪已初始化")
	} else {
		logger.Info("分布式追踪已禁用")
	}

	// --- 4. 初始化核心依赖 ---
	db, err := dependencies.InitDatabase(&cfg.DatabaseConfig, cfg.GormLogConfig, logger)
	if err != nil {
		logger.Fatal("初始化数据库失败", zap.Error(err))
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	// Redis 只服务于排行快照，连接失败时快照相关功能关闭，实时报表不受影响
	var rdb *goredis.Client
	if cfg.RedisConfig.Addr != "" {
		rdb, err = dependencies.InitRedis(&cfg.RedisConfig, logger)
		if err != nil {
			logger.Warn("Redis 不可用，排行快照功能关闭", zap.Error(err))
			rdb = nil
		} else {
			defer rdb.Close()
		}
	}

	var storage dependencies.ReportStorage
	if cfg.COSConfig.SecretID != "" {
		storage, err = dependencies.InitCOS(&cfg.COSConfig, zl)
		if err != nil {
			logger.Fatal("初始化 COS 客户端失败", zap.Error(err))
		}
	} else {
		logger.Warn("未配置 COS，报表导出功能关闭")
	}

	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, zl)
		defer kafkaProducer.Close()
	}

	// --- 5. 仓储层 ---
	postRepo := sqlstore.NewPostRepository(db, zl)
	userRepo := sqlstore.NewUserRepository(db, zl)
	commentRepo := sqlstore.NewCommentRepository(db, zl)

	// --- 6. 服务层 ---
	settings := cfg.ReportSettings
	ranker := service.NewRankerService(postRepo, userRepo, zl)
	activity := service.NewActivityService(postRepo, userRepo, settings.HydrationConcurrency, zl)
	services := controller.ReportServices{
		Ranker:        ranker,
		Activity:      activity,
		RangeFilter:   service.NewRangeFilterService(postRepo, userRepo, zl),
		ContentSearch: service.NewContentSearchService(postRepo, zl),
		CommentFeed:   service.NewCommentFeedService(commentRepo, zl),
	}
	if storage != nil {
		services.Export = service.NewReportExportService(activity, storage, settings.ExportPrefix, zl)
	}

	var snapshotTask *tasks.RankingSnapshotTask
	var consumers []*consumer.Consumer
	var contentHandler *consumer.ContentChangedHandler
	var consumerWg sync.WaitGroup
	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()

	if rdb != nil {
		var publisher service.RankingEventPublisher
		if kafkaProducer != nil {
			publisher = kafkaProducer
		}
		snapshotSvc := service.NewRankingSnapshotService(ranker, redisrepo.NewRankingSnapshotCache(rdb, zl), publisher, settings.SnapshotSize, zl)
		services.Snapshot = snapshotSvc

		// --- 7. 定时任务 ---
		snapshotTask, err = tasks.NewRankingSnapshotTask(snapshotSvc, settings.SnapshotCronSpec, true, zl)
		if err != nil {
			logger.Fatal("启动排行快照定时任务失败", zap.Error(err))
		}

		// --- 8. Kafka 消费者: 内容变更触发快照刷新 ---
		if topic := cfg.KafkaConfig.Topics.ContentChanged; len(cfg.KafkaConfig.Brokers) > 0 && topic != "" {
			groupID := cfg.KafkaConfig.ConsumerGroupID
			if groupID == "" {
				groupID = "report_service_group"
			}
			contentHandler = consumer.NewContentChangedHandler(snapshotSvc, constant.ContentChangedRefreshInterval*time.Second, zl)
			c, err := consumer.NewConsumer(&cfg.KafkaConfig, groupID, topic, contentHandler, zl)
			if err != nil {
				logger.Fatal("初始化内容变更 Kafka 消费者失败", zap.Error(err))
			}
			consumers = append(consumers, c)
		}
		for _, c := range consumers {
			consumerWg.Add(1)
			go func(cons *consumer.Consumer) {
				defer consumerWg.Done()
				cons.Start(consumerCtx)
			}(c)
		}
	}

	// --- 9. 路由与 HTTP 服务器 ---
	reportController := controller.NewReportController(services, settings)
	ginRouter := router.SetupRouter(logger, &cfg, reportController)

	serverAddr := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: ginRouter,
	}
	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
	}()

	// --- 10. 优雅关停 ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	}

	consumerCancel()
	consumerWg.Wait()
	if contentHandler != nil {
		contentHandler.Stop()
	}
	for _, c := range consumers {
		if err := c.Close(); err != nil {
			logger.Error("关闭 Kafka 消费者时出错", zap.Error(err))
		}
	}

	if snapshotTask != nil {
		select {
		case <-snapshotTask.Stop().Done():
			logger.Info("排行快照定时任务已停止")
		case <-shutdownCtx.Done():
			logger.Error("等待定时任务停止超时", zap.Error(shutdownCtx.Err()))
		}
	}

	logger.Info("服务已成功关闭")
}
