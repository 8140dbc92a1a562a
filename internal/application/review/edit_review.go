package review

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/domain/review"
	"github.com/xiebiao/bookreview/internal/domain/user"
)

// EditReviewUseCase 编辑书评用例
// 业务规则:只有书评归属人可以编辑,且只能修改rating和comment
type EditReviewUseCase struct {
	reviewRepo review.Repository
	bookRepo   book.Repository
	userRepo   user.Repository
	tx         Transactor
}

// NewEditReviewUseCase 创建编辑书评用例
func NewEditReviewUseCase(
	reviewRepo review.Repository,
	bookRepo book.Repository,
	userRepo user.Repository,
	tx Transactor,
) *EditReviewUseCase {
	return &EditReviewUseCase{
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
		userRepo:   userRepo,
		tx:         tx,
	}
}

// EditReviewRequest 编辑书评请求DTO
type EditReviewRequest struct {
	BookID   uint   // 图书ID(路径参数)
	ReviewID uint   // 书评ID(路径参数)
	UserID   uint   // 调用者用户ID(从JWT中提取)
	Rating   int    // 新评分
	Comment  string // 新评论
}

// Execute 执行编辑书评用例
// 流程:查书评 → 归属校验 → 锁图书行 → 更新书评 → 重算平均评分
// 归属校验失败或参数非法时,书评与图书评分保持原状
func (uc *EditReviewUseCase) Execute(ctx context.Context, req EditReviewRequest) (*ReviewResponse, error) {
	var rev *review.Review

	err := uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 查询书评(不存在返回ErrReviewNotFound)
		found, err := uc.reviewRepo.FindByID(txCtx, req.ReviewID)
		if err != nil {
			return err
		}
		// 书评必须挂在路径指定的图书下
		if found.BookID != req.BookID {
			return review.ErrReviewNotFound
		}

		// 2. 归属校验:只有本人可以编辑
		if !found.IsOwnedBy(req.UserID) {
			return review.ErrNotOwner
		}

		// 3. 锁定图书行,串行化同一本书的评分重算
		if _, err := uc.bookRepo.LockByID(txCtx, found.BookID); err != nil {
			return err
		}

		// 4. 领域行为校验并更新字段(评分范围、评论规则)
		if err := found.Update(req.Rating, req.Comment); err != nil {
			return err
		}

		if err := uc.reviewRepo.Update(txCtx, found); err != nil {
			return err
		}

		// 5. 全量重算平均评分(书评条数不变)
		sum, count, err := uc.reviewRepo.Aggregate(txCtx, found.BookID)
		if err != nil {
			return err
		}

		if err := uc.bookRepo.UpdateRating(txCtx, found.BookID, review.AverageRating(sum, count), int(count)); err != nil {
			return err
		}

		rev = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 附带书评人公开信息
	reviewer, err := uc.userRepo.FindByID(ctx, rev.UserID)
	if err != nil {
		return nil, err
	}

	return toReviewResponse(rev, reviewer.Name), nil
}
