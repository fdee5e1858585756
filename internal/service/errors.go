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
	ErrParamInvalid   = errors.New("参数错误")
	ErrPostNotFound   = errors.New("帖子不存在")
	ErrDuplicateSlug  = errors.New("已存在相似标题的帖子")
	UnauthorizedError = errors.New("权限不足")
	UnExpectedError   = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:   BadRequest,
	ErrPostNotFound:   NotFound,
	ErrDuplicateSlug:  BadRequest,
	UnauthorizedError: Unauthorized,
	UnExpectedError:   InternalServerError,
}
