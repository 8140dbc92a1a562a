package review

import (
	"context"
	"sort"

	domainbook "github.com/xiebiao/bookreview/internal/domain/book"
	domainreview "github.com/xiebiao/bookreview/internal/domain/review"
	domainuser "github.com/xiebiao/bookreview/internal/domain/user"
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// 内存版仓储,行为与MySQL实现对齐:
// - 同一(图书,用户)重复书评返回ErrDuplicateReview(对应唯一索引)
// - 删除后允许同一用户重新评论(对应硬删除)

type fakeReviewRepo struct {
	reviews map[uint]*domainreview.Review
	nextID  uint
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uint]*domainreview.Review), nextID: 1}
}

func (f *fakeReviewRepo) Create(ctx context.Context, r *domainreview.Review) error {
	for _, existing := range f.reviews {
		if existing.BookID == r.BookID && existing.UserID == r.UserID {
			return domainreview.ErrDuplicateReview
		}
	}
	r.ID = f.nextID
	f.nextID++
	clone := *r
	f.reviews[r.ID] = &clone
	return nil
}

func (f *fakeReviewRepo) FindByID(ctx context.Context, id uint) (*domainreview.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, domainreview.ErrReviewNotFound
	}
	clone := *r
	return &clone, nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, r *domainreview.Review) error {
	stored, ok := f.reviews[r.ID]
	if !ok {
		return domainreview.ErrReviewNotFound
	}
	stored.Rating = r.Rating
	stored.Comment = r.Comment
	stored.UpdatedAt = r.UpdatedAt
	return nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := f.reviews[id]; !ok {
		return domainreview.ErrReviewNotFound
	}
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepo) ListByBook(ctx context.Context, bookID uint, page, pageSize int) ([]*domainreview.Review, int64, error) {
	var result []*domainreview.Review
	for _, r := range f.reviews {
		if r.BookID == bookID {
			clone := *r
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	total := int64(len(result))

	start := (page - 1) * pageSize
	if start >= len(result) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], total, nil
}

func (f *fakeReviewRepo) Aggregate(ctx context.Context, bookID uint) (int64, int64, error) {
	var sum, count int64
	for _, r := range f.reviews {
		if r.BookID == bookID {
			sum += int64(r.Rating)
			count++
		}
	}
	return sum, count, nil
}

type fakeBookRepo struct {
	books map[uint]*domainbook.Book
}

func newFakeBookRepo(books ...*domainbook.Book) *fakeBookRepo {
	f := &fakeBookRepo{books: make(map[uint]*domainbook.Book)}
	for _, b := range books {
		f.books[b.ID] = b
	}
	return f
}

func (f *fakeBookRepo) Create(ctx context.Context, b *domainbook.Book) error {
	f.books[b.ID] = b
	return nil
}

func (f *fakeBookRepo) FindByID(ctx context.Context, id uint) (*domainbook.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, domainbook.ErrBookNotFound
	}
	return b, nil
}

func (f *fakeBookRepo) List(ctx context.Context, params domainbook.ListParams) ([]*domainbook.Book, int64, error) {
	return nil, 0, nil
}

func (f *fakeBookRepo) Search(ctx context.Context, query string, page, pageSize int) ([]*domainbook.Book, int64, error) {
	return nil, 0, nil
}

func (f *fakeBookRepo) LockByID(ctx context.Context, id uint) (*domainbook.Book, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeBookRepo) UpdateRating(ctx context.Context, id uint, averageRating float64, totalReviews int) error {
	b, ok := f.books[id]
	if !ok {
		return domainbook.ErrBookNotFound
	}
	b.AverageRating = averageRating
	b.TotalReviews = totalReviews
	return nil
}

type fakeUserRepo struct {
	users map[uint]*domainuser.User
}

func newFakeUserRepo(users ...*domainuser.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[uint]*domainuser.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domainuser.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (*domainuser.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domainuser.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// fakeTx 直通事务(单测不依赖数据库)
type fakeTx struct{}

func (fakeTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
