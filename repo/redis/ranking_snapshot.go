// File: repo/redis/ranking_snapshot.go
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/report_service/constant"
	"github.com/Xushengqwer/report_service/models/vo"
	"github.com/Xushengqwer/report_service/myErrors"
)

// RankingSnapshotCache 定义了作者排行快照的读写操作。
// 快照是实时排行在某个时间点的副本，实时排行本身从不读取它。
type RankingSnapshotCache interface {
	// SaveRanking 用 rows 整体覆盖现有快照 (ZSet + 展示信息 Hash + 生成时间)，在一个 MULTI/EXEC 中完成。
	SaveRanking(ctx context.Context, rows []*vo.TopAuthorVO, generatedAt time.Time) error

	// GetRanking 读取快照前 n 行，n <= 0 表示全部。
	// - 按帖子数降序、author_id 升序重新排序，与实时排行的顺序规则一致。
	// - 快照不存在时返回 myErrors.ErrCacheMiss。
	GetRanking(ctx context.Context, n int) (*vo.RankingSnapshotVO, error)
}

type authorMeta struct {
	Name *string `json:"name"`
	City *string `json:"city"`
}

type rankingSnapshotCache struct {
	redisClient *redis.Client
	logger      *zap.Logger
}

// NewRankingSnapshotCache 创建 RankingSnapshotCache 的新实例。
func NewRankingSnapshotCache(redisClient *redis.Client, logger *zap.Logger) RankingSnapshotCache {
	return &rankingSnapshotCache{redisClient: redisClient, logger: logger}
}

func (c *rankingSnapshotCache) SaveRanking(ctx context.Context, rows []*vo.TopAuthorVO, generatedAt time.Time) error {
	members := make([]redis.Z, 0, len(rows))
	meta := make(map[string]interface{}, len(rows))
	for _, r := range rows {
		b, err := json.Marshal(authorMeta{Name: r.Name, City: r.City})
		if err != nil {
			return fmt.Errorf("序列化作者 %s 的展示信息失败: %w", r.AuthorID, err)
		}
		members = append(members, redis.Z{Score: float64(r.PublishedPostCount), Member: r.AuthorID})
		meta[r.AuthorID] = string(b)
	}

	_, err := c.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, constant.AuthorRankKey, constant.AuthorRankMetaKey)
		if len(members) > 0 {
			pipe.ZAdd(ctx, constant.AuthorRankKey, members...)
			pipe.HSet(ctx, constant.AuthorRankMetaKey, meta)
		}
		pipe.Set(ctx, constant.AuthorRankGeneratedAtKey, generatedAt.UTC().Format(time.RFC3339Nano), 0)
		return nil
	})
	if err != nil {
		c.logger.Error("写入作者排行快照失败", zap.Int("rows", len(rows)), zap.Error(err))
		return fmt.Errorf("写入作者排行快照失败: %w", err)
	}

	c.logger.Info("作者排行快照已更新", zap.Int("rows", len(rows)), zap.Time("generatedAt", generatedAt))
	return nil
}

func (c *rankingSnapshotCache) GetRanking(ctx context.Context, n int) (*vo.RankingSnapshotVO, error) {
	generatedAtStr, err := c.redisClient.Get(ctx, constant.AuthorRankGeneratedAtKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, myErrors.ErrCacheMiss
		}
		return nil, fmt.Errorf("读取快照生成时间失败: %w", err)
	}
	generatedAt, err := time.Parse(time.RFC3339Nano, generatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("快照生成时间 '%s' 格式异常: %w", generatedAtStr, err)
	}

	// 快照规模很小 (snapshotSize)，整体读出后在内存中按完整规则排序
	scores, err := c.redisClient.ZRevRangeWithScores(ctx, constant.AuthorRankKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("读取作者排行快照失败: %w", err)
	}

	rows := make([]*vo.TopAuthorVO, 0, len(scores))
	ids := make([]string, 0, len(scores))
	for _, z := range scores {
		id, ok := z.Member.(string)
		if !ok {
			return nil, fmt.Errorf("排行快照成员类型非字符串 (member: %v)", z.Member)
		}
		ids = append(ids, id)
		rows = append(rows, &vo.TopAuthorVO{AuthorID: id, PublishedPostCount: int64(z.Score)})
	}

	if len(ids) > 0 {
		metas, err := c.redisClient.HMGet(ctx, constant.AuthorRankMetaKey, ids...).Result()
		if err != nil {
			return nil, fmt.Errorf("读取排行快照展示信息失败: %w", err)
		}
		for i, m := range metas {
			s, ok := m.(string)
			if !ok {
				continue // 缺失的展示信息按作者缺失处理
			}
			var am authorMeta
			if err := json.Unmarshal([]byte(s), &am); err != nil {
				c.logger.Warn("排行快照展示信息反序列化失败", zap.String("authorID", ids[i]), zap.Error(err))
				continue
			}
			rows[i].Name, rows[i].City = am.Name, am.City
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].PublishedPostCount != rows[j].PublishedPostCount {
			return rows[i].PublishedPostCount > rows[j].PublishedPostCount
		}
		return rows[i].AuthorID < rows[j].AuthorID
	})
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return &vo.RankingSnapshotVO{GeneratedAt: generatedAt, Authors: rows}, nil
}
