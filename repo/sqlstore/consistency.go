package sqlstore

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type primaryReadsKey struct{}

// WithPrimaryReads 标记 ctx: 其上的所有查询都走主库。
// 多阶段报表 (先聚合再逐条回查) 用它保证各阶段读到同一份数据，
// 不会因为 dbresolver 把两个阶段轮询到复制进度不同的从库而出现假的完整性错误。
func WithPrimaryReads(ctx context.Context) context.Context {
	return context.WithValue(ctx, primaryReadsKey{}, true)
}

func primaryReads(ctx context.Context) bool {
	v, _ := ctx.Value(primaryReadsKey{}).(bool)
	return v
}

// withContext 替代 db.WithContext，按 ctx 上的标记选择主库或从库
func withContext(db *gorm.DB, ctx context.Context) *gorm.DB {
	tx := db.WithContext(ctx)
	if primaryReads(ctx) {
		tx = tx.Clauses(dbresolver.Write)
	}
	return tx
}
