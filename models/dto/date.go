package dto

import (
	"strings"
	"time"

	"github.com/Xushengqwer/report_service/myErrors"
)

// dateLayouts 是时间参数接受的格式，按顺序尝试。
// 不带时区的格式按 UTC 解释，"2006-01-02" 即当天 00:00:00 UTC。
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate 解析时间参数，失败时返回 ValidationError。
func ParseDate(op, name, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, myErrors.NewValidationError(op, "%s is required", name)
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, myErrors.NewValidationError(op, "%s is not a valid date: %q", name, raw)
}
