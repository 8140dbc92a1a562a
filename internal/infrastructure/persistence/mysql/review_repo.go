package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookreview/internal/domain/review"
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// reviewRepository 书评仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/review/repository.go定义的接口
// 2. "一人一书一评"由(book_id,user_id)复合唯一索引保证,
//    Duplicate Entry错误转换为ErrDuplicateReview
// 3. 写操作通过getDB参与调用方事务
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建书评仓储
func NewReviewRepository(db *gorm.DB) review.Repository {
	return &reviewRepository{db: db}
}

// Create 创建书评
func (r *reviewRepository) Create(ctx context.Context, rev *review.Review) error {
	model := &ReviewModel{
		BookID:  rev.BookID,
		UserID:  rev.UserID,
		Rating:  rev.Rating,
		Comment: rev.Comment,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return review.ErrDuplicateReview
		}
		return apperrors.Wrap(err, "创建书评失败")
	}

	rev.ID = model.ID
	rev.CreatedAt = model.CreatedAt
	rev.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找书评
func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*review.Review, error) {
	var model ReviewModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, review.ErrReviewNotFound
		}
		return nil, apperrors.Wrap(err, "查询书评失败")
	}

	return toReviewEntity(&model), nil
}

// Update 更新书评(仅rating/comment)
// 使用Updates而非Save:book_id/user_id归属字段不可变
func (r *reviewRepository) Update(ctx context.Context, rev *review.Review) error {
	result := getDB(ctx, r.db).Model(&ReviewModel{}).
		Where("id = ?", rev.ID).
		Updates(map[string]interface{}{
			"rating":  rev.Rating,
			"comment": rev.Comment,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新书评失败")
	}

	return nil
}

// Delete 删除书评(物理删除,见ReviewModel的说明)
func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&ReviewModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除书评失败")
	}

	if result.RowsAffected == 0 {
		return review.ErrReviewNotFound
	}

	return nil
}

// reviewWithUser 书评+书评人关联查询的扫描结构
type reviewWithUser struct {
	ReviewModel
	ReviewerName string
}

// ListByBook 分页查询某本图书的书评,按创建时间降序
// JOIN users表取书评人显示名(只取用于展示的公开字段,绝不带出密码哈希)
func (r *reviewRepository) ListByBook(ctx context.Context, bookID uint, page, pageSize int) ([]*review.Review, int64, error) {
	db := getDB(ctx, r.db)

	var total int64
	if err := db.Model(&ReviewModel{}).Where("book_id = ?", bookID).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询书评总数失败")
	}

	var rows []reviewWithUser
	offset := (page - 1) * pageSize
	err := db.Model(&ReviewModel{}).
		Select("reviews.*, users.name AS reviewer_name").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.book_id = ?", bookID).
		Order("reviews.created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询书评列表失败")
	}

	reviews := make([]*review.Review, len(rows))
	for i := range rows {
		rev := toReviewEntity(&rows[i].ReviewModel)
		rev.ReviewerName = rows[i].ReviewerName
		reviews[i] = rev
	}

	return reviews, total, nil
}

// Aggregate 统计某本图书所有书评的评分总和与条数
// 必须用FOR SHARE做当前读:REPEATABLE READ下事务的首个普通SELECT
// (如FindByID)会固定快照,图书行锁拿到后快照读仍看不到
// 其他事务已提交的书评变更,会把过期的聚合值写回图书行
func (r *reviewRepository) Aggregate(ctx context.Context, bookID uint) (int64, int64, error) {
	var result struct {
		Sum   int64
		Count int64
	}

	err := getDB(ctx, r.db).Model(&ReviewModel{}).
		Clauses(clause.Locking{Strength: "SHARE"}).
		Select("COALESCE(SUM(rating), 0) AS sum, COUNT(*) AS count").
		Where("book_id = ?", bookID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, apperrors.Wrap(err, "统计书评评分失败")
	}

	return result.Sum, result.Count, nil
}

// toReviewEntity GORM模型 → 领域实体
func toReviewEntity(model *ReviewModel) *review.Review {
	return &review.Review{
		ID:        model.ID,
		BookID:    model.BookID,
		UserID:    model.UserID,
		Rating:    model.Rating,
		Comment:   model.Comment,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
