package myErrors

import (
	"errors"
	"fmt"
)

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// Kind 是报表错误的分类。
type Kind int

const (
	// KindUnknown 不是由报表组件产生的错误。
	KindUnknown Kind = iota
	// KindValidation 输入格式错误或越界，总是在访问数据库之前发现。
	KindValidation
	// KindIntegrity 输入合法，但跨实体引用解析为空 (数据不一致)。
	KindIntegrity
	// KindStore 数据库层面的任何失败，包括上下文取消。
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindIntegrity:
		return "integrity"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

// Error 是报表组件返回的带分类的错误。
type Error struct {
	Kind    Kind
	Op      string // 出错的操作，例如 "TopAuthors"
	Message string
	Err     error // 底层错误，仅 KindStore 与部分 KindIntegrity 携带
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	if e.Op == "" {
		return fmt.Sprintf("%s error: %s", e.Kind, msg)
	}
	return fmt.Sprintf("%s: %s error: %s", e.Op, e.Kind, msg)
}

func (e *Error) Unwrap() error { return e.Err }

// NewValidationError 构造输入校验错误。
func NewValidationError(op, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: fmt.Sprintf(format, args...)}
}

// NewIntegrityError 构造数据完整性错误，cause 可以为 nil。
func NewIntegrityError(op string, cause error, format string, args ...any) *Error {
	return &Error{Kind: KindIntegrity, Op: op, Message: fmt.Sprintf(format, args...), Err: cause}
}

// NewStoreError 包装数据库错误。已分类的错误原样返回，避免重复包装。
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Kind: KindStore, Op: op, Err: err}
}

// KindOf 返回错误链中第一个报表错误的分类。
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }

func IsIntegrity(err error) bool { return KindOf(err) == KindIntegrity }

func IsStore(err error) bool { return KindOf(err) == KindStore }
