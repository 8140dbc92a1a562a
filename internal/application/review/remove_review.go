package review

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/domain/review"
)

// RemoveReviewUseCase 删除书评用例
// 业务规则:只有书评归属人可以删除
// 删除与评分重算在同一事务内完成,派生字段不会出现过期值
type RemoveReviewUseCase struct {
	reviewRepo review.Repository
	bookRepo   book.Repository
	tx         Transactor
}

// NewRemoveReviewUseCase 创建删除书评用例
func NewRemoveReviewUseCase(
	reviewRepo review.Repository,
	bookRepo book.Repository,
	tx Transactor,
) *RemoveReviewUseCase {
	return &RemoveReviewUseCase{
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
		tx:         tx,
	}
}

// RemoveReviewRequest 删除书评请求DTO
type RemoveReviewRequest struct {
	BookID   uint // 图书ID(路径参数)
	ReviewID uint // 书评ID(路径参数)
	UserID   uint // 调用者用户ID(从JWT中提取)
}

// Execute 执行删除书评用例
// 流程:查书评 → 归属校验 → 锁图书行 → 删除书评 → 重算评分
// 删除最后一条书评时,average_rating/total_reviews重置为0/0
func (uc *RemoveReviewUseCase) Execute(ctx context.Context, req RemoveReviewRequest) error {
	return uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 查询书评(不存在返回ErrReviewNotFound)
		found, err := uc.reviewRepo.FindByID(txCtx, req.ReviewID)
		if err != nil {
			return err
		}
		// 书评必须挂在路径指定的图书下
		if found.BookID != req.BookID {
			return review.ErrReviewNotFound
		}

		// 2. 归属校验:只有本人可以删除
		if !found.IsOwnedBy(req.UserID) {
			return review.ErrNotOwner
		}

		// 3. 锁定图书行,串行化同一本书的评分重算
		if _, err := uc.bookRepo.LockByID(txCtx, found.BookID); err != nil {
			return err
		}

		// 4. 删除书评
		if err := uc.reviewRepo.Delete(txCtx, found.ID); err != nil {
			return err
		}

		// 5. 对剩余书评全量重算(没有剩余时AverageRating返回0)
		sum, count, err := uc.reviewRepo.Aggregate(txCtx, found.BookID)
		if err != nil {
			return err
		}

		return uc.bookRepo.UpdateRating(txCtx, found.BookID, review.AverageRating(sum, count), int(count))
	})
}
