package mongo

import (
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrIndexMissing 查询所需索引不存在
var ErrIndexMissing = errors.New("required index does not exist")

const (
	codeBadValue             = 2
	codeIndexNotFound        = 27
	codeOperationFailed      = 96
	codeSortMemoryNoDiskUse  = 292
	msgBadHint               = "hint"
	msgSortExceededMemoryCap = "Sort exceeded memory limit"
)

// IsIndexMissing 判断驱动错误是否由缺失索引引起
func IsIndexMissing(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrIndexMissing) {
		return true
	}
	var se mongo.ServerError
	if !errors.As(err, &se) {
		return false
	}
	return se.HasErrorCode(codeIndexNotFound) ||
		se.HasErrorCode(codeSortMemoryNoDiskUse) ||
		se.HasErrorCodeWithMessage(codeBadValue, msgBadHint) ||
		se.HasErrorCodeWithMessage(codeOperationFailed, msgSortExceededMemoryCap)
}

// classify 统一包装驱动错误，缺失索引归类为 ErrIndexMissing
func classify(err error, op string) error {
	if err == nil {
		return nil
	}
	if IsIndexMissing(err) {
		return errors.Wrapf(ErrIndexMissing, "%s: %v", op, err)
	}
	return errors.Wrap(err, op)
}
