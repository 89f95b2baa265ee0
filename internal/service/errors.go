package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrWindowInvalid     = errors.New("不支持的统计窗口")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrContentNotFound   = errors.New("内容不存在")
	ErrMetricNotFound    = errors.New("指标数据不存在")
	ErrArchiveNotFound   = errors.New("报表快照不存在")
	ErrPasswordIncorrect = errors.New("密码错误")
	ErrPasswordNotSet    = errors.New("该账号未设置密码")
	UnauthorizedError    = errors.New("权限不足")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrWindowInvalid:     BadRequest,
	ErrUserNotFound:      NotFound,
	ErrContentNotFound:   NotFound,
	ErrMetricNotFound:    NotFound,
	ErrArchiveNotFound:   NotFound,
	ErrPasswordIncorrect: Unauthorized,
	ErrPasswordNotSet:    Unauthorized,
	UnauthorizedError:    Unauthorized,
	UnExpectedError:      InternalServerError,
}
