package utils

import "errors"

var (
	// ErrEmptyName 名字为空，无法取首字母
	ErrEmptyName = errors.New("name must not be empty")
	// ErrInvalidRadius 半径必须为有限正数
	ErrInvalidRadius = errors.New("radius must be a finite positive number")
)
