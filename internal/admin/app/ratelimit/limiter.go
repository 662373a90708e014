//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "LoginLimiter=LoginLimiter"
package ratelimit

import "context"

type LoginLimiter interface {
	Check(ctx context.Context, username, clientIP string) (allowed bool, err error)
	Fail(ctx context.Context, username, clientIP string) error
	Reset(ctx context.Context, username, clientIP string) error
}

type noopLoginLimiter struct{}

func NewNoopLoginLimiter() LoginLimiter {
	return noopLoginLimiter{}
}

func (noopLoginLimiter) Check(context.Context, string, string) (bool, error) {
	return true, nil
}

func (noopLoginLimiter) Fail(context.Context, string, string) error {
	return nil
}

func (noopLoginLimiter) Reset(context.Context, string, string) error {
	return nil
}
