package review

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewReview 测试书评创建的业务规则
func TestNewReview(t *testing.T) {
	t.Run("正常创建", func(t *testing.T) {
		r, err := NewReview(1, 2, 5, "经典之作")
		require.NoError(t, err)

		assert.Equal(t, uint(1), r.BookID)
		assert.Equal(t, uint(2), r.UserID)
		assert.Equal(t, 5, r.Rating)
		assert.Equal(t, "经典之作", r.Comment)
		assert.False(t, r.CreatedAt.IsZero())
	})

	t.Run("评论自动去除首尾空白", func(t *testing.T) {
		r, err := NewReview(1, 2, 4, "  值得一读  ")
		require.NoError(t, err)
		assert.Equal(t, "值得一读", r.Comment)
	})

	t.Run("评分超出范围", func(t *testing.T) {
		_, err := NewReview(1, 2, 0, "评论")
		assert.ErrorIs(t, err, ErrInvalidRating)

		_, err = NewReview(1, 2, 6, "评论")
		assert.ErrorIs(t, err, ErrInvalidRating)
	})

	t.Run("评论为空", func(t *testing.T) {
		_, err := NewReview(1, 2, 3, "")
		assert.ErrorIs(t, err, ErrEmptyComment)

		// 纯空白也算空
		_, err = NewReview(1, 2, 3, "   ")
		assert.ErrorIs(t, err, ErrEmptyComment)
	})

	t.Run("评论超长", func(t *testing.T) {
		// 刚好1000字符可以通过
		_, err := NewReview(1, 2, 3, strings.Repeat("a", MaxCommentLength))
		assert.NoError(t, err)

		_, err = NewReview(1, 2, 3, strings.Repeat("a", MaxCommentLength+1))
		assert.ErrorIs(t, err, ErrCommentTooLong)
	})

	t.Run("评论长度按字符数计", func(t *testing.T) {
		// 1000个中文字符=3000字节,按字符计长应通过
		_, err := NewReview(1, 2, 3, strings.Repeat("好", MaxCommentLength))
		assert.NoError(t, err)

		_, err = NewReview(1, 2, 3, strings.Repeat("好", MaxCommentLength+1))
		assert.ErrorIs(t, err, ErrCommentTooLong)
	})
}

// TestReviewUpdate 测试书评编辑
func TestReviewUpdate(t *testing.T) {
	t.Run("正常编辑", func(t *testing.T) {
		r, err := NewReview(1, 2, 5, "初读感受")
		require.NoError(t, err)

		err = r.Update(3, "再读之后降一点分")
		require.NoError(t, err)
		assert.Equal(t, 3, r.Rating)
		assert.Equal(t, "再读之后降一点分", r.Comment)
	})

	t.Run("非法参数不改变原值", func(t *testing.T) {
		r, err := NewReview(1, 2, 5, "初读感受")
		require.NoError(t, err)

		err = r.Update(9, "新评论")
		assert.ErrorIs(t, err, ErrInvalidRating)
		assert.Equal(t, 5, r.Rating)
		assert.Equal(t, "初读感受", r.Comment)
	})
}

// TestIsOwnedBy 测试归属判断
func TestIsOwnedBy(t *testing.T) {
	r, err := NewReview(1, 2, 5, "评论")
	require.NoError(t, err)

	assert.True(t, r.IsOwnedBy(2))
	assert.False(t, r.IsOwnedBy(3))
}
