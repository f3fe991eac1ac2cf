package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
	ServiceUnavailable  = 503
)

var (
	ErrParamInvalid     = errors.New("参数错误")
	ErrPostNotFound     = errors.New("帖子不存在")
	ErrStoreUnavailable = errors.New("帖子加载失败，请稍后重试")
	UnExpectedError     = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     BadRequest,
	ErrPostNotFound:     NotFound,
	ErrStoreUnavailable: ServiceUnavailable,
	UnExpectedError:     InternalServerError,
}

// Lookup 查找错误链中第一个已登记的业务错误
func Lookup(err error) (error, int, bool) {
	if code, ok := ErrorMap[err]; ok {
		return err, code, true
	}
	for known, code := range ErrorMap {
		if errors.Is(err, known) {
			return known, code, true
		}
	}
	return nil, 0, false
}
