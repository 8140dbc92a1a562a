package review

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/domain/review"
	"github.com/xiebiao/bookreview/internal/domain/user"
)

// SubmitReviewUseCase 提交书评用例
// 设计说明:这是评分聚合的核心用例之一
// 涉及:事务处理、行级锁、派生字段重算
type SubmitReviewUseCase struct {
	reviewRepo review.Repository
	bookRepo   book.Repository
	userRepo   user.Repository
	tx         Transactor
}

// NewSubmitReviewUseCase 创建提交书评用例
func NewSubmitReviewUseCase(
	reviewRepo review.Repository,
	bookRepo book.Repository,
	userRepo user.Repository,
	tx Transactor,
) *SubmitReviewUseCase {
	return &SubmitReviewUseCase{
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
		userRepo:   userRepo,
		tx:         tx,
	}
}

// SubmitReviewRequest 提交书评请求DTO
type SubmitReviewRequest struct {
	BookID  uint   // 图书ID(路径参数)
	UserID  uint   // 书评人用户ID(从JWT中提取)
	Rating  int    // 评分(1-5)
	Comment string // 评论
}

// ReviewerInfo 书评人公开信息
type ReviewerInfo struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ReviewResponse 书评响应DTO
type ReviewResponse struct {
	ID        uint         `json:"id"`
	BookID    uint         `json:"book_id"`
	Rating    int          `json:"rating"`
	Comment   string       `json:"comment"`
	Reviewer  ReviewerInfo `json:"reviewer"`
	CreatedAt string       `json:"created_at"`
	UpdatedAt string       `json:"updated_at"`
}

// Execute 执行提交书评用例
// 核心问题:并发重算互相覆盖
// 场景:两个用户同时给同一本书提交书评
// 错误实现:各自插入后各自读书评集合重算——后提交的COMMIT会以
// 不含对方书评的旧集合覆盖评分
//
// 正确实现:悲观锁
//  1. SELECT FOR UPDATE 锁定图书行(同一本书的变更在此串行化)
//  2. 插入书评((book_id,user_id)唯一索引拦截重复评价)
//  3. 事务内SUM/COUNT全量重算
//  4. 更新图书的average_rating/total_reviews
//  5. COMMIT释放锁
func (uc *SubmitReviewUseCase) Execute(ctx context.Context, req SubmitReviewRequest) (*ReviewResponse, error) {
	// 1. 业务规则校验(评分范围、评论非空且不超长)
	rev, err := review.NewReview(req.BookID, req.UserID, req.Rating, req.Comment)
	if err != nil {
		return nil, err
	}

	// 2. 事务:写入书评并重算图书评分
	err = uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		// 锁定图书行(图书不存在时返回ErrBookNotFound)
		if _, err := uc.bookRepo.LockByID(txCtx, req.BookID); err != nil {
			return err
		}

		// 插入书评(重复评价返回ErrDuplicateReview,事务回滚)
		if err := uc.reviewRepo.Create(txCtx, rev); err != nil {
			return err
		}

		// 全量重算:读取该书全部书评求和计数
		// 相比增量更新,全量重算不会累积漂移,单书书评量小,代价可接受
		sum, count, err := uc.reviewRepo.Aggregate(txCtx, req.BookID)
		if err != nil {
			return err
		}

		return uc.bookRepo.UpdateRating(txCtx, req.BookID, review.AverageRating(sum, count), int(count))
	})
	if err != nil {
		return nil, err
	}

	// 3. 附带书评人公开信息(仅ID和显示名)
	reviewer, err := uc.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	return toReviewResponse(rev, reviewer.Name), nil
}

// toReviewResponse 领域实体 → 响应DTO
func toReviewResponse(rev *review.Review, reviewerName string) *ReviewResponse {
	return &ReviewResponse{
		ID:      rev.ID,
		BookID:  rev.BookID,
		Rating:  rev.Rating,
		Comment: rev.Comment,
		Reviewer: ReviewerInfo{
			ID:   rev.UserID,
			Name: reviewerName,
		},
		CreatedAt: rev.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: rev.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
