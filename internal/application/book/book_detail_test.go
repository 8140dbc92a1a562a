package book

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainbook "github.com/xiebiao/bookreview/internal/domain/book"
	domainreview "github.com/xiebiao/bookreview/internal/domain/review"
)

// stubReviewRepo 只实现详情页用到的查询,写操作不会被调用
type stubReviewRepo struct {
	reviews []*domainreview.Review
}

func (s *stubReviewRepo) Create(ctx context.Context, r *domainreview.Review) error   { return nil }
func (s *stubReviewRepo) Update(ctx context.Context, r *domainreview.Review) error   { return nil }
func (s *stubReviewRepo) Delete(ctx context.Context, id uint) error                  { return nil }
func (s *stubReviewRepo) FindByID(ctx context.Context, id uint) (*domainreview.Review, error) {
	return nil, domainreview.ErrReviewNotFound
}

func (s *stubReviewRepo) ListByBook(ctx context.Context, bookID uint, page, pageSize int) ([]*domainreview.Review, int64, error) {
	var matched []*domainreview.Review
	for _, r := range s.reviews {
		if r.BookID == bookID {
			matched = append(matched, r)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := int64(len(matched))

	start := (page - 1) * pageSize
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (s *stubReviewRepo) Aggregate(ctx context.Context, bookID uint) (int64, int64, error) {
	var sum, count int64
	for _, r := range s.reviews {
		if r.BookID == bookID {
			sum += int64(r.Rating)
			count++
		}
	}
	return sum, count, nil
}

func seedReviews(bookID uint, n int) *stubReviewRepo {
	repo := &stubReviewRepo{}
	base := time.Now().Add(-time.Hour)
	for i := 0; i < n; i++ {
		repo.reviews = append(repo.reviews, &domainreview.Review{
			ID:           uint(i + 1),
			BookID:       bookID,
			UserID:       uint(100 + i),
			Rating:       5,
			Comment:      fmt.Sprintf("第%d条评论", i+1),
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
			UpdatedAt:    base.Add(time.Duration(i) * time.Minute),
			ReviewerName: fmt.Sprintf("reader%d", i+1),
		})
	}
	return repo
}

// TestBookDetail 测试图书详情(图书信息+书评分页)
func TestBookDetail(t *testing.T) {
	ctx := context.Background()

	setup := func(reviewCount int) *BookDetailUseCase {
		svc := &stubBookService{}
		_, _ = svc.AddBook(ctx, "1984", "George Orwell", "Dystopian", "描述", 1949, "")
		return NewBookDetailUseCase(svc, seedReviews(1, reviewCount))
	}

	t.Run("图书不存在", func(t *testing.T) {
		uc := setup(0)

		_, err := uc.Execute(ctx, BookDetailRequest{BookID: 99})
		assert.ErrorIs(t, err, domainbook.ErrBookNotFound)
	})

	t.Run("书评缺省每页5条", func(t *testing.T) {
		uc := setup(8)

		resp, err := uc.Execute(ctx, BookDetailRequest{BookID: 1})
		require.NoError(t, err)

		assert.Equal(t, "1984", resp.Book.Title)
		assert.Len(t, resp.Reviews.List, 5)
		assert.Equal(t, int64(8), resp.Reviews.Total)
		assert.Equal(t, 1, resp.Reviews.Page)
		assert.Equal(t, DefaultReviewsPageSize, resp.Reviews.PageSize)
		assert.Equal(t, 2, resp.Reviews.TotalPages)
	})

	t.Run("书评最新优先", func(t *testing.T) {
		uc := setup(8)

		resp, err := uc.Execute(ctx, BookDetailRequest{BookID: 1})
		require.NoError(t, err)

		// seed中第8条创建时间最晚
		require.NotEmpty(t, resp.Reviews.List)
		assert.Equal(t, "第8条评论", resp.Reviews.List[0].Comment)
		assert.Equal(t, "reader8", resp.Reviews.List[0].Reviewer.Name)
	})

	t.Run("第二页书评", func(t *testing.T) {
		uc := setup(8)

		resp, err := uc.Execute(ctx, BookDetailRequest{BookID: 1, Page: 2})
		require.NoError(t, err)
		assert.Len(t, resp.Reviews.List, 3)
		assert.Equal(t, 2, resp.Reviews.Page)
	})

	t.Run("没有书评", func(t *testing.T) {
		uc := setup(0)

		resp, err := uc.Execute(ctx, BookDetailRequest{BookID: 1})
		require.NoError(t, err)
		assert.Empty(t, resp.Reviews.List)
		assert.Equal(t, int64(0), resp.Reviews.Total)
		assert.Equal(t, 0.0, resp.Book.AverageRating)
	})
}
