package constant

// 报表查询的默认参数
const (
	// DefaultTopN 作者排行的默认数量
	DefaultTopN = 5
	// DefaultActivityThreshold 活跃作者的默认已发布帖子数阈值
	DefaultActivityThreshold = 5
	// DefaultHydrationConcurrency 活跃作者补全阶段的默认并发数
	DefaultHydrationConcurrency = 8

	// DefaultCommentLimit 最新评论列表的默认条数
	DefaultCommentLimit = 10
	// MaxCommentLimit 最新评论列表的最大条数，超出部分会被截断到该值
	MaxCommentLimit = 100

	// DefaultSnapshotSize 排行快照的默认条数
	DefaultSnapshotSize = 50
	// DefaultSnapshotCronSpec 排行快照的默认刷新周期
	DefaultSnapshotCronSpec = "@every 10m"
	// SnapshotRefreshTimeout 单次快照刷新的超时时间 (秒)
	SnapshotRefreshTimeout = 60
	// ContentChangedRefreshInterval 内容变更事件触发快照刷新的最小间隔 (秒)
	ContentChangedRefreshInterval = 30

	// DefaultExportPrefix 导出文件在 COS 中的默认前缀
	DefaultExportPrefix = "reports"
)
