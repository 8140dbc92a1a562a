package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	// 如果不存在,返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// List 分页查询图书列表
	// 过滤条件为大小写不敏感的子串匹配,缺省排序为创建时间降序
	// 超出范围的页码返回空列表和真实total,不报错
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// Search 按标题或作者搜索(大小写不敏感子串匹配)
	// 按创建时间降序,分页同List
	Search(ctx context.Context, query string, page, pageSize int) ([]*Book, int64, error)

	// LockByID 悲观锁查询图书(用于书评变更时锁定评分字段)
	// 使用SELECT FOR UPDATE锁定行,串行化同一本书的并发重算
	// 必须在事务内调用
	LockByID(ctx context.Context, id uint) (*Book, error)

	// UpdateRating 更新派生评分字段
	// 仅由书评聚合的重算流程调用,须与书评写入处于同一事务
	UpdateRating(ctx context.Context, id uint, averageRating float64, totalReviews int) error
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	Author   string // 作者过滤(子串匹配,空串不过滤)
	Genre    string // 类型过滤(子串匹配,空串不过滤)
	SortBy   string // 排序字段(created_at, title, publication_year, average_rating)
	Order    string // 排序方向(asc, desc)
}
