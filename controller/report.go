package controller

import (
	"errors"
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/report_service/config"
	"github.com/Xushengqwer/report_service/constant"
	"github.com/Xushengqwer/report_service/models/dto"
	"github.com/Xushengqwer/report_service/myErrors"
	"github.com/Xushengqwer/report_service/service"
)

// ReportServices 汇总报表控制器依赖的服务。
// Snapshot 与 Export 依赖 Redis/COS，未配置时为 nil，对应路由不注册。
type ReportServices struct {
	Ranker        service.RankerService
	Activity      service.ActivityService
	RangeFilter   service.RangeFilterService
	ContentSearch service.ContentSearchService
	CommentFeed   service.CommentFeedService
	Snapshot      service.RankingSnapshotService
	Export        service.ReportExportService
}

// ReportController 报表查询控制器
type ReportController struct {
	svc                      ReportServices
	defaultTopN              int
	defaultActivityThreshold int
}

// NewReportController 构造函数，settings 提供 n/k 的默认值
func NewReportController(svc ReportServices, settings config.ReportSettings) *ReportController {
	ctrl := &ReportController{
		svc:                      svc,
		defaultTopN:              settings.DefaultTopN,
		defaultActivityThreshold: settings.DefaultActivityThreshold,
	}
	if ctrl.defaultTopN <= 0 {
		ctrl.defaultTopN = constant.DefaultTopN
	}
	if ctrl.defaultActivityThreshold <= 0 {
		ctrl.defaultActivityThreshold = constant.DefaultActivityThreshold
	}
	return ctrl
}

// respondReportError 把报表错误分类映射为 HTTP 状态码
func respondReportError(c *gin.Context, err error) {
	switch {
	case myErrors.IsValidation(err):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, err.Error())
	case errors.Is(err, myErrors.ErrCacheMiss):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "排行快照尚未生成")
	case myErrors.IsIntegrity(err):
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "数据完整性错误: "+err.Error())
	default:
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "报表查询失败: "+err.Error())
	}
}

// bindQuery 绑定查询参数，失败时以 400 返回并告知调用方停止处理
func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		respondReportError(c, myErrors.NewValidationError(c.FullPath(), "无效的查询参数: %v", err))
		return false
	}
	return true
}

// TopAuthors 作者排行
// @Summary      已发布帖子数最多的作者
// @Description  按已发布帖子数降序返回前 n 位作者，帖子数相同时按作者 ID 升序。作者记录缺失时 name/city 为 null。
// @Tags         report (报表)
// @Produce      json
// @Param        n query int false "返回的作者数量，默认 5" minimum(1)
// @Success      200 {object} vo.TopAuthorsResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "n 不是正整数"
// @Failure      500 {object} vo.BaseResponseWrapper "数据库错误"
// @Router       /api/v1/report/authors/top [get]
func (ctrl *ReportController) TopAuthors(c *gin.Context) {
	var req dto.TopAuthorsRequestDTO
	if !bindQuery(c, &req) {
		return
	}
	n, err := dto.ParseIntParam("TopAuthors", "n", req.N, ctrl.defaultTopN)
	if err != nil {
		respondReportError(c, err)
		return
	}

	rows, err := ctrl.svc.Ranker.TopAuthors(c.Request.Context(), n)
	if err != nil {
		respondReportError(c, err)
		return
	}
	response.RespondSuccess(c, rows, "作者排行查询成功")
}

// ActiveAuthors 活跃作者
// @Summary      活跃作者及其最新帖子
// @Description  返回已发布帖子数不少于 k 的作者，以及每位作者最新的一篇已发布帖子。
// @Tags         report (报表)
// @Produce      json
// @Param        k query int false "已发布帖子数阈值，默认 5" minimum(1)
// @Success      200 {object} vo.ActiveAuthorsResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "k 不是正整数"
// @Failure      500 {object} vo.BaseResponseWrapper "数据库错误或数据完整性错误"
// @Router       /api/v1/report/authors/active [get]
func (ctrl *ReportController) ActiveAuthors(c *gin.Context) {
	var req dto.ActiveAuthorsRequestDTO
	if !bindQuery(c, &req) {
		return
	}
	k, err := dto.ParseIntParam("ActiveAuthors", "k", req.K, ctrl.defaultActivityThreshold)
	if err != nil {
		respondReportError(c, err)
		return
	}

	rows, err := ctrl.svc.Activity.ActiveAuthors(c.Request.Context(), k)
	if err != nil {
		respondReportError(c, err)
		return
	}
	response.RespondSuccess(c, rows, "活跃作者查询成功")
}

// UsersCreatedBetween 区间内注册的用户
// @Summary      按注册时间区间查询用户
// @Description  两端都包含。start 晚于 end 时返回空列表。
// @Tags         report (报表)
// @Produce      json
// @Param        start query string true "起始时间 (RFC3339 / 2006-01-02 15:04:05 / 2006-01-02)"
// @Param        end query string true "结束时间，格式同 start"
// @Success      200 {object} vo.UsersResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "时间格式错误"
// @Failure      500 {object} vo.BaseResponseWrapper "数据库错误"
// @Router       /api/v1/report/users/range [get]
func (ctrl *ReportController) UsersCreatedBetween(c *gin.Context) {
	var req dto.DateRangeRequestDTO
	if !bindQuery(c, &req) {
		return
	}
	rows, err := ctrl.svc.RangeFilter.UsersCreatedBetween(c.Request.Context(), req.Start, req.End)
	if err != nil {
		respondReportError(c, err)
		return
	}
	response.RespondSuccess(c, rows, "用户查询成功")
}

// PublishedPostsCreatedBetween 区间内发布的帖子
// @Summary      按创建时间区间查询已发布帖子
// @Description  两端都包含，结果带作者 name/city 与评论内容，按创建时间降序。
// @Tags         report (报表)
// @Produce      json
// @Param        start query string true "起始时间"
// @Param        end query string true "结束时间"
// @Success      200 {object} vo.PostsWithRelationsResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "时间格式错误"
// @Failure      500 {object} vo.BaseResponseWrapper "数据库错误"
// @Router       /api/v1/report/posts/range [get]
func (ctrl *ReportController) PublishedPostsCreatedBetween(c *gin.Context) {
	var req dto.DateRangeRequestDTO
	if !bindQuery(c, &req) {
		return
	}
	rows, err := ctrl.svc.RangeFilter.PublishedPostsCreatedBetween(c.Request.Context(), req.Start, req.End)
	if err != nil {
		respondReportError(c, err)
		return
	}
	response.RespondSuccess(c, rows, "帖子查询成功")
}

// PublishedPostsSince 指定时间之后发布的帖子
// @Summary      查询指定时间之后的已发布帖子
// @Tags         report (报表)
// @Produce      json
// @Param        start query string true "起始时间 (包含)"
// @Success      200 {object} vo.PostsWithRelationsResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "时间格式错误"
// @Failure      500 {object} vo.BaseResponseWrapper "数据库错误"
// @Router       /api/v1/report/posts/since [get]
func (ctrl *ReportController) PublishedPostsSince(c *gin.Context) {
	var req dto.SinceRequestDTO
	if !bindQuery(c, &req) {
		return
	}
	rows, err := ctrl.svc.RangeFilter.PublishedPostsSince(c.Request.Context(), req.Start)
	if err != nil {
		respondReportError(c, err)
		return
	}
	response.RespondSuccess(c, rows, "帖子查询成功")
}

// SearchPosts 帖子内容模糊搜索
// @Summary      按关键字模糊搜索帖子内容
// @Description  postgres 使用 pg_trgm 相似度，mysql 使用全文索引。结果不区分是否发布。
// @Tags         report (报表)
// @Produce      json
// @Param        keyword query string true "关键字"
// @Success      200 {object} vo.PostsResponseWrapper "搜索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "关键字为空"
// @Failure      500 {object} vo.BaseResponseWrapper "数据库错误"
// @Router       /api/v1/report/posts/search [get]
func (ctrl *ReportController) SearchPosts(c *gin.Context) {
	var req dto.SearchPostsRequestDTO
	if !bindQuery(c, &req) {
		return
	}
	rows, err := ctrl.svc.ContentSearch.SearchPosts(c.Request.Context(), req.Keyword)
	if err != nil {
		respondReportError(c, err)
		return
	}
	response.RespondSuccess(c, rows, "帖子搜索成功")
}

// LatestComments 最新评论
// @Summary      最新评论列表
// @Tags         report (报表)
// @Produce      json
// @Param        limit query int false "条数，默认 10，最大 100"
// @Success      200 {object} vo.CommentsResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "limit 不是整数"
// @Failure      500 {object} vo.BaseResponseWrapper "数据库错误"
// @Router       /api/v1/report/comments/latest [get]
func (ctrl *ReportController) LatestComments(c *gin.Context) {
	var req dto.LatestCommentsRequestDTO
	if !bindQuery(c, &req) {
		return
	}
	limit, err := dto.ParseTruncatedIntParam("LatestComments", "limit", req.Limit, constant.DefaultCommentLimit)
	if err != nil {
		respondReportError(c, err)
		return
	}

	rows, err := ctrl.svc.CommentFeed.LatestComments(c.Request.Context(), limit)
	if err != nil {
		respondReportError(c, err)
		return
	}
	response.RespondSuccess(c, rows, "评论查询成功")
}

// TopAuthorsSnapshot 作者排行快照
// @Summary      读取作者排行快照
// @Description  快照由定时任务与内容变更事件刷新，带生成时间，可能落后于实时排行。
// @Tags         report (报表)
// @Produce      json
// @Param        n query int false "返回的作者数量，默认 5" minimum(1)
// @Success      200 {object} vo.RankingSnapshotResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "n 不是正整数"
// @Failure      404 {object} vo.BaseResponseWrapper "快照尚未生成"
// @Failure      500 {object} vo.BaseResponseWrapper "Redis 错误"
// @Router       /api/v1/report/authors/top/snapshot [get]
func (ctrl *ReportController) TopAuthorsSnapshot(c *gin.Context) {
	var req dto.TopAuthorsRequestDTO
	if !bindQuery(c, &req) {
		return
	}
	n, err := dto.ParseIntParam("GetRankingSnapshot", "n", req.N, ctrl.defaultTopN)
	if err != nil {
		respondReportError(c, err)
		return
	}

	snapshot, err := ctrl.svc.Snapshot.GetSnapshot(c.Request.Context(), n)
	if err != nil {
		respondReportError(c, err)
		return
	}
	response.RespondSuccess(c, snapshot, "排行快照查询成功")
}

// ExportActiveAuthors 导出活跃作者报表
// @Summary      导出活跃作者报表到 COS
// @Tags         report (报表)
// @Produce      json
// @Param        k query int false "已发布帖子数阈值，默认 5" minimum(1)
// @Success      200 {object} vo.ExportResponseWrapper "导出成功"
// @Failure      400 {object} vo.BaseResponseWrapper "k 不是正整数"
// @Failure      500 {object} vo.BaseResponseWrapper "查询或上传失败"
// @Router       /api/v1/report/authors/active/export [post]
func (ctrl *ReportController) ExportActiveAuthors(c *gin.Context) {
	var req dto.ActiveAuthorsRequestDTO
	if !bindQuery(c, &req) {
		return
	}
	k, err := dto.ParseIntParam("ExportActiveAuthors", "k", req.K, ctrl.defaultActivityThreshold)
	if err != nil {
		respondReportError(c, err)
		return
	}

	out, err := ctrl.svc.Export.ExportActiveAuthors(c.Request.Context(), k)
	if err != nil {
		respondReportError(c, err)
		return
	}
	response.RespondSuccess(c, out, "活跃作者报表导出成功")
}

// RegisterRoutes 注册 ReportController 的路由
func (ctrl *ReportController) RegisterRoutes(group *gin.RouterGroup) {
	authors := group.Group("/authors")
	{
		authors.GET("/top", ctrl.TopAuthors)
		authors.GET("/active", ctrl.ActiveAuthors)
		if ctrl.svc.Snapshot != nil {
			authors.GET("/top/snapshot", ctrl.TopAuthorsSnapshot)
		}
		if ctrl.svc.Export != nil {
			authors.POST("/active/export", ctrl.ExportActiveAuthors)
		}
	}

	group.GET("/users/range", ctrl.UsersCreatedBetween)

	posts := group.Group("/posts")
	{
		posts.GET("/range", ctrl.PublishedPostsCreatedBetween)
		posts.GET("/since", ctrl.PublishedPostsSince)
		posts.GET("/search", ctrl.SearchPosts)
	}

	group.GET("/comments/latest", ctrl.LatestComments)
}
