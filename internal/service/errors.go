package service

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrMatchCompleted = errors.New("match already completed")
	ErrUnavailable    = errors.New("unavailable")
)
