package constant

// Redis Key 相关常量 (导出)
const (
	// AuthorRankKey 是作者已发布帖子数排行快照的 Key。
	// Redis 类型: Sorted Set，成员是作者 ID，分数是快照生成时的已发布帖子数。
	// 示例成员与分数: Member="6f1c...", Score=12
	AuthorRankKey = "author_published_rank"

	// AuthorRankMetaKey 存放快照中每个作者的展示信息 (name/city)。
	// Redis 类型: Hash，Field=作者 ID，Value=JSON，例如 {"name":"张三","city":"深圳"}
	// 作者记录缺失时 name/city 为 null，与实时排行保持一致。
	AuthorRankMetaKey = "author_published_rank:meta"

	// AuthorRankGeneratedAtKey 记录快照生成时间 (RFC3339Nano 字符串)。
	// Redis 类型: String
	AuthorRankGeneratedAtKey = "author_published_rank:generated_at"
)
