package dto

import (
	"math"
	"strconv"
	"strings"

	"github.com/Xushengqwer/report_service/myErrors"
)

// TopAuthorsRequestDTO 作者排行的查询参数。
// - 从URL查询参数 "n" 获取，为空时使用配置的默认值。
// - 不使用 binding 标签校验数字，非数字输入需要以 ValidationError 的形式返回给调用方。
type TopAuthorsRequestDTO struct {
	N string `form:"n"`
}

// ActiveAuthorsRequestDTO 活跃作者的查询参数。
// - K: 已发布帖子数阈值，从URL查询参数 "k" 获取。
type ActiveAuthorsRequestDTO struct {
	K string `form:"k"`
}

// DateRangeRequestDTO 时间区间查询参数，两端都包含。
// - Start/End 支持 RFC3339、"2006-01-02 15:04:05" 与 "2006-01-02" 三种格式。
// - 不校验 Start <= End，倒置的区间合法，只是没有结果。
type DateRangeRequestDTO struct {
	Start string `form:"start"`
	End   string `form:"end"`
}

// SinceRequestDTO 起始时间查询参数。
type SinceRequestDTO struct {
	Start string `form:"start"`
}

// SearchPostsRequestDTO 帖子内容模糊搜索参数。
type SearchPostsRequestDTO struct {
	Keyword string `form:"keyword"`
}

// LatestCommentsRequestDTO 最新评论列表参数。
type LatestCommentsRequestDTO struct {
	Limit string `form:"limit"`
}

// ParseIntParam 解析整数型查询参数。
// - raw 为空 (或只有空白) 时返回 def。
// - 非数字返回 ValidationError，范围校验留给服务层。
func ParseIntParam(op, name, raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, myErrors.NewValidationError(op, "%s must be an integer, got %q", name, raw)
	}
	return v, nil
}

// ParseTruncatedIntParam 与 ParseIntParam 相同，但接受小数并向零截断，例如 "2.7" 得到 2。
// - 用于条数类参数 (limit)，其余参数仍要求整数。
func ParseTruncatedIntParam(op, name, raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, myErrors.NewValidationError(op, "%s must be a number, got %q", name, raw)
	}
	f = math.Trunc(f)
	if f > math.MaxInt32 {
		f = math.MaxInt32
	} else if f < math.MinInt32 {
		f = math.MinInt32
	}
	return int(f), nil
}
