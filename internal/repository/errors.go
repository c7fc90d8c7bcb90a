package repository

import "errors"

// 仓储层在事务内做存在性/归属校验时返回的错误，由 service 层翻译为业务错误
var (
	ErrTargetNotFound = errors.New("target not found")
	ErrParentNotFound = errors.New("parent comment not found")
	ErrParentMismatch = errors.New("parent comment belongs to another post")
	ErrDuplicate      = errors.New("duplicate record")
)
