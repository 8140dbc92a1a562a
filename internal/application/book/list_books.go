package book

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/book"
)

// 分页参数缺省值与上限
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 支持分页、作者/类型过滤、排序
// 2. 列表查询不返回description字段(减少数据传输量)
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// ListBooksRequest 列表查询请求DTO
type ListBooksRequest struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	Author   string // 作者过滤(子串匹配)
	Genre    string // 类型过滤(子串匹配)
	SortBy   string // 排序字段(created_at, title, publication_year, average_rating)
	Order    string // 排序方向(asc, desc)
}

// BookListItem 列表项DTO(不含description)
type BookListItem struct {
	ID              uint    `json:"id"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	Genre           string  `json:"genre"`
	PublicationYear int     `json:"publication_year"`
	CoverImage      string  `json:"cover_image"`
	AverageRating   float64 `json:"average_rating"`
	TotalReviews    int     `json:"total_reviews"`
	CreatedAt       string  `json:"created_at"`
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	List       []BookListItem `json:"list"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// Execute 执行列表查询用例
// 说明:
// 1. 参数默认值处理(page默认1, pageSize默认10,最大100)
// 2. 页码超出范围返回空列表和真实分页元数据,不报错
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	// 1. 参数默认值与范围限制
	req.Page, req.PageSize = normalizePage(req.Page, req.PageSize)

	// 2. 调用领域服务查询
	books, total, err := uc.bookService.ListBooks(ctx, book.ListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
		Author:   req.Author,
		Genre:    req.Genre,
		SortBy:   req.SortBy,
		Order:    req.Order,
	})
	if err != nil {
		return nil, err
	}

	// 3. 转换为DTO
	return &ListBooksResponse{
		List:       toBookListItems(books),
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages(total, req.PageSize),
	}, nil
}

// =========================================
// 辅助函数(列表/搜索共用)
// =========================================

// normalizePage 分页参数默认值与范围限制
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// totalPages 总页数 = ceil(total/pageSize)
func totalPages(total int64, pageSize int) int {
	pages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		pages++
	}
	return pages
}

// toBookListItems 领域实体列表 → 列表项DTO
func toBookListItems(books []*book.Book) []BookListItem {
	list := make([]BookListItem, len(books))
	for i, b := range books {
		list[i] = BookListItem{
			ID:              b.ID,
			Title:           b.Title,
			Author:          b.Author,
			Genre:           b.Genre,
			PublicationYear: b.PublicationYear,
			CoverImage:      b.CoverImage,
			AverageRating:   b.AverageRating,
			TotalReviews:    b.TotalReviews,
			CreatedAt:       b.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}
	return list
}
