// dependencies/database.go
package dependencies

import (
	"database/sql"
	"fmt"
	"time"

	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	appConfig "github.com/Xushengqwer/report_service/config"
	"github.com/Xushengqwer/report_service/models/entities"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// dialectorFor 按方言名构造 gorm.Dialector，空字符串视为 postgres
func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "", DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverMySQL:
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("不支持的数据库方言 %q (可选: postgres, mysql)", driver)
	}
}

// InitDatabase 初始化数据库连接，并配置读写分离 (如果配置了从库)。
// 报表只读，配置了从库后所有查询都由 dbresolver 路由到从库。
func InitDatabase(dbCfg *appConfig.DatabaseConfig, gormLogCfg commonConfig.GormLogConfig, logger *core.ZapLogger) (*gorm.DB, error) {
	if dbCfg.Write.DSN == "" {
		return nil, fmt.Errorf("主数据库 DSN (databaseConfig.write.dsn) 未配置")
	}
	dialector, err := dialectorFor(dbCfg.Driver, dbCfg.Write.DSN)
	if err != nil {
		return nil, err
	}
	gormConfig := &gorm.Config{
		Logger: core.NewGormLogger(logger, gormLogCfg),
	}

	var db *gorm.DB
	maxRetries := 5
	retryInterval := 2 * time.Second

	// 重试连接主库
	logger.Info("开始连接主数据库...", zap.String("driver", dialector.Name()))
	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(dialector, gormConfig)
		if err == nil {
			var sqlDB *sql.DB
			sqlDB, err = db.DB()
			if err == nil {
				if err = sqlDB.Ping(); err == nil {
					break
				}
			}
		}
		logger.Warn("无法连接到主数据库，尝试重试", zap.Int("retry", i+1), zap.Int("maxRetries", maxRetries), zap.Error(err))
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
		}
	}
	if err != nil {
		logger.Error("无法连接到主数据库", zap.Error(err))
		return nil, fmt.Errorf("无法连接到主数据库: %w", err)
	}
	logger.Info("成功连接到主数据库")

	// --- 配置读写分离 (dbresolver) ---
	readReplicas := make([]gorm.Dialector, 0, len(dbCfg.Read))
	for i, replicaCfg := range dbCfg.Read {
		if replicaCfg.DSN == "" {
			logger.Warn("发现空的从库 DSN 配置，已跳过", zap.Int("index", i))
			continue
		}
		replica, _ := dialectorFor(dbCfg.Driver, replicaCfg.DSN)
		readReplicas = append(readReplicas, replica)
	}
	if len(readReplicas) > 0 {
		source, _ := dialectorFor(dbCfg.Driver, dbCfg.Write.DSN)
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Sources:  []gorm.Dialector{source},
			Replicas: readReplicas,
			Policy:   dbresolver.StrictRoundRobinPolicy(),
		}))
		if err != nil {
			logger.Error("配置 GORM 读写分离插件失败", zap.Error(err))
			return nil, fmt.Errorf("配置 GORM 读写分离失败: %w", err)
		}
		logger.Info("成功配置 GORM 读写分离插件", zap.Int("从库数量", len(readReplicas)))
	} else {
		logger.Info("未配置有效的从数据库，不启用读写分离")
	}

	// --- 配置连接池 ---
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("无法获取数据库对象: %w", err)
	}
	maxIdle, maxOpen, maxLife := dbCfg.SharedMaxIdleConns, dbCfg.SharedMaxOpenConns, dbCfg.SharedConnMaxLifetime
	if dbCfg.Write.MaxIdleConns != nil {
		maxIdle = *dbCfg.Write.MaxIdleConns
	}
	if dbCfg.Write.MaxOpenConns != nil {
		maxOpen = *dbCfg.Write.MaxOpenConns
	}
	if dbCfg.Write.ConnMaxLifetime != nil {
		maxLife = *dbCfg.Write.ConnMaxLifetime
	}
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(maxLife) * time.Second)
	logger.Info("配置数据库连接池",
		zap.Int("最大空闲连接数", maxIdle),
		zap.Int("最大打开连接数", maxOpen),
		zap.Int("连接最大生命周期(秒)", maxLife),
	)

	if dbCfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			logger.Error("数据库自动迁移失败", zap.Error(err))
			return nil, err
		}
		logger.Info("数据库自动迁移完成")
	}

	logger.Info("成功初始化数据库连接", zap.String("driver", db.Dialector.Name()))
	return db, nil
}

// Migrate 建表并创建模糊搜索依赖的索引。
// - postgres: pg_trgm 扩展 + content 上的 GIN trigram 索引
// - mysql: content 上的 FULLTEXT 索引
// 其它方言只建表。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}, &entities.Topic{}, &entities.Post{}, &entities.Comment{}); err != nil {
		return fmt.Errorf("数据库自动迁移失败: %w", err)
	}

	switch db.Dialector.Name() {
	case DriverPostgres:
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS pg_trgm").Error; err != nil {
			return fmt.Errorf("启用 pg_trgm 扩展失败: %w", err)
		}
		if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_posts_content_trgm ON posts USING GIN (content gin_trgm_ops)").Error; err != nil {
			return fmt.Errorf("创建帖子内容 trigram 索引失败: %w", err)
		}
	case DriverMySQL:
		if !db.Migrator().HasIndex(&entities.Post{}, "idx_posts_content_fulltext") {
			if err := db.Exec("CREATE FULLTEXT INDEX idx_posts_content_fulltext ON posts (content)").Error; err != nil {
				return fmt.Errorf("创建帖子内容全文索引失败: %w", err)
			}
		}
	}
	return nil
}
