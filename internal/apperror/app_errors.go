package apperror

import "errors"

var (
	ErrRedisAddrEmpty    = errors.New("redis address string is empty")
	ErrRedisChannelEmpty = errors.New("redis channel is empty")
	ErrUnknownTheme      = errors.New("unknown theme")
	ErrEmptyDownloadURL  = errors.New("download url is empty")
)
