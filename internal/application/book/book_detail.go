package book

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/domain/review"
)

// 图书详情页书评分页缺省值
const DefaultReviewsPageSize = 5

// BookDetailUseCase 图书详情查询用例
// 返回图书信息+该书最新优先的一页书评
type BookDetailUseCase struct {
	bookService book.Service
	reviewRepo  review.Repository
}

// NewBookDetailUseCase 创建图书详情用例
func NewBookDetailUseCase(bookService book.Service, reviewRepo review.Repository) *BookDetailUseCase {
	return &BookDetailUseCase{
		bookService: bookService,
		reviewRepo:  reviewRepo,
	}
}

// BookDetailRequest 图书详情请求DTO
type BookDetailRequest struct {
	BookID   uint // 图书ID(路径参数)
	Page     int  // 书评页码(从1开始)
	PageSize int  // 书评每页数量
}

// ReviewItem 书评列表项DTO
// 书评人只暴露ID和显示名(绝不包含凭证哈希)
type ReviewItem struct {
	ID        uint        `json:"id"`
	Rating    int         `json:"rating"`
	Comment   string      `json:"comment"`
	Reviewer  ReviewerRef `json:"reviewer"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}

// ReviewerRef 书评人公开信息
type ReviewerRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// BookDetailResponse 图书详情响应DTO
type BookDetailResponse struct {
	Book    *BookResponse `json:"book"`
	Reviews ReviewPage    `json:"reviews"`
}

// ReviewPage 书评分页数据
type ReviewPage struct {
	List       []ReviewItem `json:"list"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalPages int          `json:"total_pages"`
}

// Execute 执行图书详情用例
func (uc *BookDetailUseCase) Execute(ctx context.Context, req BookDetailRequest) (*BookDetailResponse, error) {
	// 书评分页缺省值(详情页每页5条)
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = DefaultReviewsPageSize
	}
	if req.PageSize > MaxPageSize {
		req.PageSize = MaxPageSize
	}

	// 1. 查询图书(不存在返回ErrBookNotFound)
	b, err := uc.bookService.GetBookByID(ctx, req.BookID)
	if err != nil {
		return nil, err
	}

	// 2. 查询该书书评(最新优先,分页)
	reviews, total, err := uc.reviewRepo.ListByBook(ctx, req.BookID, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	list := make([]ReviewItem, len(reviews))
	for i, rev := range reviews {
		list[i] = ReviewItem{
			ID:      rev.ID,
			Rating:  rev.Rating,
			Comment: rev.Comment,
			Reviewer: ReviewerRef{
				ID:   rev.UserID,
				Name: rev.ReviewerName,
			},
			CreatedAt: rev.CreatedAt.Format("2006-01-02 15:04:05"),
			UpdatedAt: rev.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
	}

	return &BookDetailResponse{
		Book: toBookResponse(b),
		Reviews: ReviewPage{
			List:       list,
			Total:      total,
			Page:       req.Page,
			PageSize:   req.PageSize,
			TotalPages: totalPages(total, req.PageSize),
		},
	}, nil
}
