package config

// ReportSettings 包含报表查询相关的配置
type ReportSettings struct {
	// DefaultTopN 是作者排行在未指定 n 时的默认数量。
	DefaultTopN int `mapstructure:"defaultTopN" json:"defaultTopN" yaml:"defaultTopN"`

	// DefaultActivityThreshold 是活跃作者在未指定 k 时的默认已发布帖子数阈值。
	DefaultActivityThreshold int `mapstructure:"defaultActivityThreshold" json:"defaultActivityThreshold" yaml:"defaultActivityThreshold"`

	// HydrationConcurrency 是活跃作者查询第二阶段 (按作者补全用户与最新帖子) 同时发往数据库的查询数量上限。
	// 例如聚合阶段得到 300 个作者、该值为 8 时，最多同时有 8 个 findUnique 查询在执行。
	// 这个参数主要影响单次报表占用的数据库连接数。
	HydrationConcurrency int `mapstructure:"hydrationConcurrency" json:"hydrationConcurrency" yaml:"hydrationConcurrency"`

	// SnapshotSize 是定时写入 Redis 的作者排行快照的条数。
	SnapshotSize int `mapstructure:"snapshotSize" json:"snapshotSize" yaml:"snapshotSize"`

	// SnapshotCronSpec 是刷新排行快照的 cron 表达式，例如 "@every 10m"。
	SnapshotCronSpec string `mapstructure:"snapshotCronSpec" json:"snapshotCronSpec" yaml:"snapshotCronSpec"`

	// ExportPrefix 是导出到 COS 的报表文件的 ObjectKey 前缀。
	ExportPrefix string `mapstructure:"exportPrefix" json:"exportPrefix" yaml:"exportPrefix"`
}
