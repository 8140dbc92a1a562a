package review

import (
	"context"
)

// Repository 书评仓储接口
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 写操作(Create/Update/Delete/Aggregate)会参与调用方的事务
//    (实现通过context传递事务句柄,参考TxManager)
type Repository interface {
	// Create 创建书评
	// (BookID,UserID)已存在时返回ErrDuplicateReview(由唯一索引保证)
	Create(ctx context.Context, review *Review) error

	// FindByID 根据ID查找书评
	// 如果不存在,返回ErrReviewNotFound
	FindByID(ctx context.Context, id uint) (*Review, error)

	// Update 更新书评(仅rating/comment)
	Update(ctx context.Context, review *Review) error

	// Delete 删除书评
	Delete(ctx context.Context, id uint) error

	// ListByBook 分页查询某本图书的书评,按创建时间降序
	// 每条书评附带书评人显示名(ReviewerName)
	ListByBook(ctx context.Context, bookID uint, page, pageSize int) ([]*Review, int64, error)

	// Aggregate 统计某本图书所有书评的评分总和与条数
	// 重算平均评分时使用,必须与书评写入处于同一事务,
	// 且实现必须做当前读(而非快照读),保证持有图书行锁时
	// 能看到其他事务已提交的书评变更
	Aggregate(ctx context.Context, bookID uint) (sum int64, count int64, err error)
}
