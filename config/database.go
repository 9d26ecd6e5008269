package config

// SourceConfig 代表一个数据库源（主库或从库）的配置
type SourceConfig struct {
	DSN string `mapstructure:"dsn" json:"dsn" yaml:"dsn"` // 直接使用 DSN 字符串
	// 保留独立的连接池设置，允许覆盖共享设置 (可选)
	MaxIdleConns    *int `mapstructure:"max_idle_conns,omitempty" json:"max_idle_conns,omitempty" yaml:"max_idle_conns,omitempty"`
	MaxOpenConns    *int `mapstructure:"max_open_conns,omitempty" json:"max_open_conns,omitempty" yaml:"max_open_conns,omitempty"`
	ConnMaxLifetime *int `mapstructure:"conn_max_lifetime,omitempty" json:"conn_max_lifetime,omitempty" yaml:"conn_max_lifetime,omitempty"` // 秒
}

// DatabaseConfig 包含数据库方言、主库与从库的配置。
// 报表全部是只读查询，配置了从库时所有查询都会被 dbresolver 路由到从库。
type DatabaseConfig struct {
	// Driver 数据库方言: "postgres" (默认，支持 pg_trgm 模糊搜索) 或 "mysql" (使用 FULLTEXT 自然语言搜索)
	Driver string         `mapstructure:"driver" json:"driver" yaml:"driver"`
	Write  SourceConfig   `mapstructure:"write" json:"write" yaml:"write"` // 主库配置
	Read   []SourceConfig `mapstructure:"read" json:"read" yaml:"read"`    // 从库配置列表 (可以为空，表示不启用读写分离)

	// 共享/默认连接池设置 (如果 Write 中未指定，则使用这些值)
	SharedMaxIdleConns    int `mapstructure:"max_idle_conns" json:"max_idle_conns" yaml:"max_idle_conns"`
	SharedMaxOpenConns    int `mapstructure:"max_open_conns" json:"max_open_conns" yaml:"max_open_conns"`
	SharedConnMaxLifetime int `mapstructure:"conn_max_lifetime" json:"conn_max_lifetime" yaml:"conn_max_lifetime"` // 秒

	// AutoMigrate 启动时是否执行 AutoMigrate (生产环境通常由独立的迁移流程负责)
	AutoMigrate bool `mapstructure:"auto_migrate" json:"auto_migrate" yaml:"auto_migrate"`
}
