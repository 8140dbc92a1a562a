package book

import (
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.ErrBookNotFound

	// ErrInvalidYear 出版年份不合法
	ErrInvalidYear = apperrors.New(apperrors.ErrCodeInvalidParams, "出版年份不合法")

	// ErrEmptyQuery 搜索关键词为空
	ErrEmptyQuery = apperrors.New(apperrors.ErrCodeInvalidParams, "搜索关键词不能为空")
)
