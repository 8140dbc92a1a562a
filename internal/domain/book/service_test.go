package book

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository 内存版图书仓储(测试用)
type fakeRepository struct {
	books  map[uint]*Book
	nextID uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{books: make(map[uint]*Book), nextID: 1}
}

func (f *fakeRepository) Create(ctx context.Context, b *Book) error {
	b.ID = f.nextID
	f.nextID++
	f.books[b.ID] = b
	return nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id uint) (*Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, ErrBookNotFound
	}
	return b, nil
}

func (f *fakeRepository) List(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	var result []*Book
	for _, b := range f.books {
		result = append(result, b)
	}
	return result, int64(len(result)), nil
}

func (f *fakeRepository) Search(ctx context.Context, query string, page, pageSize int) ([]*Book, int64, error) {
	q := strings.ToLower(query)
	var result []*Book
	for _, b := range f.books {
		if strings.Contains(strings.ToLower(b.Title), q) || strings.Contains(strings.ToLower(b.Author), q) {
			result = append(result, b)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeRepository) LockByID(ctx context.Context, id uint) (*Book, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeRepository) UpdateRating(ctx context.Context, id uint, avg float64, total int) error {
	b, ok := f.books[id]
	if !ok {
		return ErrBookNotFound
	}
	b.AverageRating = avg
	b.TotalReviews = total
	return nil
}

// TestAddBook 测试添加图书的业务规则
func TestAddBook(t *testing.T) {
	ctx := context.Background()

	t.Run("正常添加", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		b, err := svc.AddBook(ctx, "1984", "George Orwell", "Dystopian", "关于极权社会的小说", 1949, "")
		require.NoError(t, err)

		assert.NotZero(t, b.ID)
		assert.Equal(t, "1984", b.Title)
		assert.Equal(t, 0.0, b.AverageRating, "新书没有书评,平均分为0")
		assert.Equal(t, 0, b.TotalReviews)
	})

	t.Run("封面为空时使用占位图", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		b, err := svc.AddBook(ctx, "1984", "George Orwell", "Dystopian", "描述", 1949, "")
		require.NoError(t, err)
		assert.Equal(t, DefaultCoverImage, b.CoverImage)
	})

	t.Run("指定封面时保留", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		b, err := svc.AddBook(ctx, "1984", "George Orwell", "Dystopian", "描述", 1949, "https://example.com/1984.jpg")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/1984.jpg", b.CoverImage)
	})

	t.Run("出版年份超出范围", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		_, err := svc.AddBook(ctx, "书", "作者", "类型", "描述", 999, "")
		assert.ErrorIs(t, err, ErrInvalidYear)

		// 允许到明年(预售书)
		_, err = svc.AddBook(ctx, "书", "作者", "类型", "描述", time.Now().Year()+1, "")
		assert.NoError(t, err)

		_, err = svc.AddBook(ctx, "书", "作者", "类型", "描述", time.Now().Year()+2, "")
		assert.ErrorIs(t, err, ErrInvalidYear)
	})

	t.Run("字段自动去除首尾空白", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		b, err := svc.AddBook(ctx, "  1984  ", " George Orwell ", "Dystopian", "描述", 1949, "")
		require.NoError(t, err)
		assert.Equal(t, "1984", b.Title)
		assert.Equal(t, "George Orwell", b.Author)
	})
}

// TestSearchBooks 测试图书搜索
func TestSearchBooks(t *testing.T) {
	ctx := context.Background()

	t.Run("空关键词被拒绝", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		_, _, err := svc.SearchBooks(ctx, "", 1, 10)
		assert.ErrorIs(t, err, ErrEmptyQuery)

		// 纯空白同样被拒绝
		_, _, err = svc.SearchBooks(ctx, "   ", 1, 10)
		assert.ErrorIs(t, err, ErrEmptyQuery)
	})

	t.Run("按作者搜索大小写不敏感", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo)

		_, err := svc.AddBook(ctx, "1984", "George Orwell", "Dystopian", "描述", 1949, "")
		require.NoError(t, err)
		_, err = svc.AddBook(ctx, "Dune", "Frank Herbert", "Sci-Fi", "描述", 1965, "")
		require.NoError(t, err)

		result, total, err := svc.SearchBooks(ctx, "orwell", 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, result, 1)
		assert.Equal(t, "1984", result[0].Title)
	})
}

// TestGetBookByID 测试图书详情查询
func TestGetBookByID(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository())

	_, err := svc.GetBookByID(ctx, 42)
	assert.ErrorIs(t, err, ErrBookNotFound)
}
