package review

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxCommentLength 评论最大长度
const MaxCommentLength = 1000

// Review 书评实体
// DDD设计说明:
// 1. 一条书评关联且仅关联一本图书与一个用户
// 2. 同一(图书,用户)对只允许一条书评,由数据库唯一索引保证
// 3. 书评归属用户创建后不可变,只有rating和comment可编辑
type Review struct {
	ID        uint
	BookID    uint
	UserID    uint
	Rating    int    // 评分,[1,5]的整数
	Comment   string // 评论,非空且不超过1000字符
	CreatedAt time.Time
	UpdatedAt time.Time

	// ReviewerName 书评人显示名(查询时由仓储关联填充,仅用于展示)
	ReviewerName string
}

// NewReview 创建新书评(工厂方法)
// 校验评分与评论的业务规则
func NewReview(bookID, userID uint, rating int, comment string) (*Review, error) {
	comment = strings.TrimSpace(comment)
	if err := validate(rating, comment); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Review{
		BookID:    bookID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update 编辑书评(领域行为)
// 只允许修改rating和comment,归属不可变
func (r *Review) Update(rating int, comment string) error {
	comment = strings.TrimSpace(comment)
	if err := validate(rating, comment); err != nil {
		return err
	}

	r.Rating = rating
	r.Comment = comment
	r.UpdatedAt = time.Now()
	return nil
}

// IsOwnedBy 检查书评是否属于指定用户
func (r *Review) IsOwnedBy(userID uint) bool {
	return r.UserID == userID
}

// validate 评分与评论校验
func validate(rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	if comment == "" {
		return ErrEmptyComment
	}
	// 按字符数而非字节数计长,与HTTP层binding校验口径一致
	if utf8.RuneCountInString(comment) > MaxCommentLength {
		return ErrCommentTooLong
	}
	return nil
}
