package review

import (
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// 书评领域错误定义
var (
	// ErrReviewNotFound 书评不存在
	ErrReviewNotFound = apperrors.ErrReviewNotFound

	// ErrDuplicateReview 同一用户重复评价同一本书
	ErrDuplicateReview = apperrors.ErrDuplicateReview

	// ErrNotOwner 只能操作自己的书评
	ErrNotOwner = apperrors.New(apperrors.ErrCodeForbidden, "只能操作自己的书评")

	// ErrInvalidRating 评分超出范围
	ErrInvalidRating = apperrors.New(apperrors.ErrCodeInvalidParams, "评分必须是1到5的整数")

	// ErrEmptyComment 评论为空
	ErrEmptyComment = apperrors.New(apperrors.ErrCodeInvalidParams, "评论不能为空")

	// ErrCommentTooLong 评论超长
	ErrCommentTooLong = apperrors.New(apperrors.ErrCodeInvalidParams, "评论不能超过1000个字符")
)
