package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Xushengqwer/report_service/constant"
	"github.com/Xushengqwer/report_service/models/dto"
	"github.com/Xushengqwer/report_service/myErrors"
	"github.com/Xushengqwer/report_service/service"
)

const (
	exitOK         = 0
	exitStore      = 1
	exitValidation = 2
	exitIntegrity  = 4
)

// exitCode 把错误分类映射为进程退出码，未分类的错误按数据库错误处理
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	switch myErrors.KindOf(err) {
	case myErrors.KindValidation:
		return exitValidation
	case myErrors.KindIntegrity:
		return exitIntegrity
	default:
		return exitStore
	}
}

type services struct {
	ranker      service.RankerService
	activity    service.ActivityService
	rangeFilter service.RangeFilterService
	search      service.ContentSearchService
	comments    service.CommentFeedService
}

type command func(ctx context.Context, svc services, fs *flag.FlagSet, args []string) (any, error)

var commands = map[string]command{
	"top-authors": func(ctx context.Context, svc services, fs *flag.FlagSet, args []string) (any, error) {
		n := fs.Int("n", constant.DefaultTopN, "返回的作者数量")
		if err := parse(fs, args); err != nil {
			return nil, err
		}
		return svc.ranker.TopAuthors(ctx, *n)
	},
	"active-authors": func(ctx context.Context, svc services, fs *flag.FlagSet, args []string) (any, error) {
		k := fs.Int("k", constant.DefaultActivityThreshold, "已发布帖子数阈值")
		if err := parse(fs, args); err != nil {
			return nil, err
		}
		return svc.activity.ActiveAuthors(ctx, *k)
	},
	"users-range": func(ctx context.Context, svc services, fs *flag.FlagSet, args []string) (any, error) {
		start := fs.String("start", "", "起始时间 (包含)")
		end := fs.String("end", "", "结束时间 (包含)")
		if err := parse(fs, args); err != nil {
			return nil, err
		}
		return svc.rangeFilter.UsersCreatedBetween(ctx, *start, *end)
	},
	"posts-range": func(ctx context.Context, svc services, fs *flag.FlagSet, args []string) (any, error) {
		start := fs.String("start", "", "起始时间 (包含)")
		end := fs.String("end", "", "结束时间 (包含)")
		if err := parse(fs, args); err != nil {
			return nil, err
		}
		return svc.rangeFilter.PublishedPostsCreatedBetween(ctx, *start, *end)
	},
	"posts-since": func(ctx context.Context, svc services, fs *flag.FlagSet, args []string) (any, error) {
		start := fs.String("start", "", "起始时间 (包含)")
		if err := parse(fs, args); err != nil {
			return nil, err
		}
		return svc.rangeFilter.PublishedPostsSince(ctx, *start)
	},
	"search": func(ctx context.Context, svc services, fs *flag.FlagSet, args []string) (any, error) {
		keyword := fs.String("keyword", "", "关键字")
		if err := parse(fs, args); err != nil {
			return nil, err
		}
		return svc.search.SearchPosts(ctx, *keyword)
	},
	"comments": func(ctx context.Context, svc services, fs *flag.FlagSet, args []string) (any, error) {
		raw := fs.String("limit", "", "条数，默认 10，最大 100，小数向零截断")
		if err := parse(fs, args); err != nil {
			return nil, err
		}
		limit, err := dto.ParseTruncatedIntParam("LatestComments", "limit", *raw, constant.DefaultCommentLimit)
		if err != nil {
			return nil, err
		}
		return svc.comments.LatestComments(ctx, limit)
	},
}

func commandNames() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

// parse 解析子命令参数，解析失败 (包括非数字的 -n/-k) 按参数错误处理
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return myErrors.NewValidationError(fs.Name(), "%v", err)
	}
	if fs.NArg() > 0 {
		return myErrors.NewValidationError(fs.Name(), "unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return nil
}

// execute 运行一个子命令并把结果以缩进 JSON 写到 out
func execute(ctx context.Context, svc services, name string, args []string, out io.Writer) error {
	cmd, ok := commands[name]
	if !ok {
		return myErrors.NewValidationError("report", "unknown command %q (one of %s)", name, commandNames())
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	result, err := cmd(ctx, svc, fs, args)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("写出结果失败: %w", err)
	}
	return nil
}
