package pkg

import "net/http"

// ErrKind 业务错误分类
type ErrKind int

const (
	KindValidation   ErrKind = iota + 1 // 输入不合法
	KindNotFound                        // 目标实体不存在
	KindSelfAction                      // 对自己做的禁止操作
	KindDuplicate                       // 重复操作
	KindUnauthorized                    // 凭证无效
)

// AppError 带分类和可选 HTTP 状态提示的业务错误。
// Status 为 0 时由错误中间件落到默认状态码。
type AppError struct {
	Kind    ErrKind
	Message string
	Status  int
}

func (e *AppError) Error() string {
	return e.Message
}

func Validation(msg string) *AppError {
	return &AppError{Kind: KindValidation, Message: msg}
}

func NotFound(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg}
}

// NotFoundStatus 带明确状态码的 NotFound（目前只有查单则推文用 404）
func NotFoundStatus(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg, Status: http.StatusNotFound}
}

func SelfAction(msg string) *AppError {
	return &AppError{Kind: KindSelfAction, Message: msg}
}

func Duplicate(msg string) *AppError {
	return &AppError{Kind: KindDuplicate, Message: msg}
}

// Unauthorized 凭证校验失败，固定提示 401
func Unauthorized(msg string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: msg, Status: http.StatusUnauthorized}
}
