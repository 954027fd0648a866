package ectp

import "errors"

var (
	ErrFrameTooShort      = errors.New("ectp: frame shorter than minimal reply message")
	ErrBadSkipcount       = errors.New("ectp: skipcount misaligned or past frame end")
	ErrTruncatedMessage   = errors.New("ectp: message truncated by frame end")
	ErrUnknownMessageType = errors.New("ectp: unknown message type")
)
