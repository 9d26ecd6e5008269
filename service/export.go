package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xushengqwer/report_service/constant"
	"github.com/Xushengqwer/report_service/dependencies"
	"github.com/Xushengqwer/report_service/models/vo"
	"github.com/Xushengqwer/report_service/myErrors"
)

// ReportExportService 定义了把报表导出到对象存储的业务接口。
type ReportExportService interface {
	// ExportActiveAuthors 运行一次活跃作者查询，把结果以 JSON 数组上传，
	// ObjectKey 形如 <prefix>/active-authors/<yyyy-mm-dd>/<uuid>.json。
	// 查询失败时不会上传任何文件。
	ExportActiveAuthors(ctx context.Context, k int) (*vo.ExportVO, error)
}

type reportExportService struct {
	activity ActivityService
	storage  dependencies.ReportStorage
	prefix   string
	logger   *zap.Logger
	now      func() time.Time
}

// NewReportExportService 是 reportExportService 的构造函数。
func NewReportExportService(activity ActivityService, storage dependencies.ReportStorage, prefix string, logger *zap.Logger) ReportExportService {
	if prefix == "" {
		prefix = constant.DefaultExportPrefix
	}
	return &reportExportService{activity: activity, storage: storage, prefix: prefix, logger: logger, now: time.Now}
}

func (s *reportExportService) ExportActiveAuthors(ctx context.Context, k int) (*vo.ExportVO, error) {
	const op = "ExportActiveAuthors"
	rows, err := s.activity.ActiveAuthors(ctx, k)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: 序列化导出内容失败: %w", op, err)
	}

	objectKey := path.Join(s.prefix, "active-authors", s.now().UTC().Format("2006-01-02"), uuid.New().String()+".json")
	url, err := s.storage.UploadFile(ctx, objectKey, bytes.NewReader(body), int64(len(body)), "application/json")
	if err != nil {
		s.logger.Error("上传活跃作者报表失败", zap.String("objectKey", objectKey), zap.Error(err))
		return nil, myErrors.NewStoreError(op, err)
	}

	s.logger.Info("活跃作者报表导出成功", zap.Int("k", k), zap.Int("rows", len(rows)), zap.String("objectKey", objectKey))
	return &vo.ExportVO{URL: url, ObjectKey: objectKey, Rows: len(rows)}, nil
}
