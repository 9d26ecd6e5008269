package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/report_service/models/vo"
	"github.com/Xushengqwer/report_service/myErrors"
)

type stubActivity struct {
	rows []*vo.ActiveAuthorVO
	err  error
}

func (s *stubActivity) ActiveAuthors(context.Context, int) ([]*vo.ActiveAuthorVO, error) {
	return s.rows, s.err
}

type memoryStorage struct {
	key         string
	body        []byte
	contentType string
	err         error
}

func (m *memoryStorage) UploadFile(_ context.Context, objectKey string, r io.Reader, _ int64, contentType string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.key, m.contentType = objectKey, contentType
	m.body, _ = io.ReadAll(r)
	return "https://cdn.example.com/" + objectKey, nil
}

func (m *memoryStorage) DeleteObject(context.Context, string) error { return nil }

func TestExport_ActiveAuthors(t *testing.T) {
	activity := &stubActivity{rows: []*vo.ActiveAuthorVO{{AuthorID: "A", AuthorName: "Alice", TotalPublishedPosts: 6}}}
	storage := &memoryStorage{}
	svc := NewReportExportService(activity, storage, "", zap.NewNop()).(*reportExportService)
	svc.now = func() time.Time { return time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC) }

	out, err := svc.ExportActiveAuthors(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Rows)
	assert.True(t, strings.HasPrefix(out.ObjectKey, "reports/active-authors/2024-03-09/"))
	assert.True(t, strings.HasSuffix(out.ObjectKey, ".json"))
	assert.Equal(t, "https://cdn.example.com/"+out.ObjectKey, out.URL)
	assert.Equal(t, "application/json", storage.contentType)

	var uploaded []*vo.ActiveAuthorVO
	require.NoError(t, json.Unmarshal(storage.body, &uploaded))
	require.Len(t, uploaded, 1)
	assert.Equal(t, "Alice", uploaded[0].AuthorName)
}

func TestExport_Failures(t *testing.T) {
	storage := &memoryStorage{}
	integrity := myErrors.NewIntegrityError("ActiveAuthors", nil, "author missing")
	svc := NewReportExportService(&stubActivity{err: integrity}, storage, "x", zap.NewNop())

	_, err := svc.ExportActiveAuthors(context.Background(), 5)
	assert.True(t, myErrors.IsIntegrity(err))
	assert.Empty(t, storage.key, "查询失败时不应上传")

	storage = &memoryStorage{err: errors.New("403")}
	svc = NewReportExportService(&stubActivity{rows: []*vo.ActiveAuthorVO{}}, storage, "x", zap.NewNop())
	_, err = svc.ExportActiveAuthors(context.Background(), 5)
	assert.True(t, myErrors.IsStore(err))
}
