package sqlstore

import (
	"context"

	"go.uber.org/zap"

	"github.com/Xushengqwer/report_service/models/entities"
)

// searchQuery 是某个方言下的模糊搜索模板，args 根据关键字生成参数列表。
type searchQuery struct {
	sql  string
	args func(keyword string) []any
}

var (
	// postgres: pg_trgm 的 % 运算符，相似度阈值取 pg_trgm.similarity_threshold (默认 0.3)
	trigramSearch = searchQuery{
		sql:  `SELECT * FROM posts WHERE content % ? ORDER BY similarity(content, ?) DESC, id ASC`,
		args: func(k string) []any { return []any{k, k} },
	}
	// mysql: 自然语言模式的全文检索
	fulltextSearch = searchQuery{
		sql:  `SELECT * FROM posts WHERE MATCH(content) AGAINST (? IN NATURAL LANGUAGE MODE) ORDER BY id ASC`,
		args: func(k string) []any { return []any{k} },
	}
)

// searchQueryFor 根据方言名选择模板，未知方言使用 trigram 模板，由数据库决定是否支持。
func searchQueryFor(dialect string) searchQuery {
	if dialect == "mysql" {
		return fulltextSearch
	}
	return trigramSearch
}

func (r *postRepository) SearchContent(ctx context.Context, keyword string) ([]*entities.Post, error) {
	q := searchQueryFor(r.db.Dialector.Name())

	posts := make([]*entities.Post, 0)
	if err := withContext(r.db, ctx).Raw(q.sql, q.args(keyword)...).Scan(&posts).Error; err != nil {
		r.logger.Error("帖子内容模糊搜索失败",
			zap.Error(err),
			zap.String("dialect", r.db.Dialector.Name()),
			zap.String("keyword", keyword),
		)
		return nil, err
	}
	return posts, nil
}
