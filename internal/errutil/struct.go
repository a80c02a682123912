package errutil

import (
	"errors"
	"fmt"
)

type InternalError struct {
	err error
}

func NewInternalError(msg string) InternalError {
	return InternalError{err: errors.New(msg)}
}

func (e InternalError) Error() string {
	return e.err.Error()
}

// 上流（radiko）の HTTP ステータスコードをそのまま持ち回るためのエラー
type UpstreamStatusError struct {
	StatusCode int
}

func NewUpstreamStatusError(statusCode int) *UpstreamStatusError {
	return &UpstreamStatusError{StatusCode: statusCode}
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream returned status code %d", e.StatusCode)
}
