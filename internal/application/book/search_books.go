package book

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/book"
)

// SearchBooksUseCase 图书搜索用例
// 按标题或作者做大小写不敏感的子串匹配,按创建时间降序
type SearchBooksUseCase struct {
	bookService book.Service
}

// NewSearchBooksUseCase 创建搜索用例
func NewSearchBooksUseCase(bookService book.Service) *SearchBooksUseCase {
	return &SearchBooksUseCase{
		bookService: bookService,
	}
}

// SearchBooksRequest 搜索请求DTO
type SearchBooksRequest struct {
	Query    string // 搜索关键词(必填)
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
}

// Execute 执行搜索用例
// 关键词为空由领域服务返回参数错误
func (uc *SearchBooksUseCase) Execute(ctx context.Context, req SearchBooksRequest) (*ListBooksResponse, error) {
	req.Page, req.PageSize = normalizePage(req.Page, req.PageSize)

	books, total, err := uc.bookService.SearchBooks(ctx, req.Query, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	return &ListBooksResponse{
		List:       toBookListItems(books),
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages(total, req.PageSize),
	}, nil
}
