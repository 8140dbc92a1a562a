package book

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/book"
)

// AddBookUseCase 添加图书用例
// 设计说明:
// 1. 应用层负责用例编排,业务规则校验由领域服务负责
// 2. 输入输出使用DTO(Data Transfer Object),与HTTP层解耦
type AddBookUseCase struct {
	bookService book.Service
}

// NewAddBookUseCase 创建添加图书用例
func NewAddBookUseCase(bookService book.Service) *AddBookUseCase {
	return &AddBookUseCase{
		bookService: bookService,
	}
}

// AddBookRequest 添加图书请求DTO
type AddBookRequest struct {
	Title           string // 书名
	Author          string // 作者
	Genre           string // 类型
	Description     string // 图书描述
	PublicationYear int    // 出版年份
	CoverImage      string // 封面图URL(可空,缺省为占位图)
}

// BookResponse 图书响应DTO
type BookResponse struct {
	ID              uint    `json:"id"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	Genre           string  `json:"genre"`
	Description     string  `json:"description"`
	PublicationYear int     `json:"publication_year"`
	CoverImage      string  `json:"cover_image"`
	AverageRating   float64 `json:"average_rating"`
	TotalReviews    int     `json:"total_reviews"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// Execute 执行添加图书用例
func (uc *AddBookUseCase) Execute(ctx context.Context, req AddBookRequest) (*BookResponse, error) {
	b, err := uc.bookService.AddBook(
		ctx,
		req.Title,
		req.Author,
		req.Genre,
		req.Description,
		req.PublicationYear,
		req.CoverImage,
	)
	if err != nil {
		return nil, err
	}

	return toBookResponse(b), nil
}

// toBookResponse 领域实体 → 响应DTO
func toBookResponse(b *book.Book) *BookResponse {
	return &BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		Genre:           b.Genre,
		Description:     b.Description,
		PublicationYear: b.PublicationYear,
		CoverImage:      b.CoverImage,
		AverageRating:   b.AverageRating,
		TotalReviews:    b.TotalReviews,
		CreatedAt:       b.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       b.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
