package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookreview/internal/domain/book"
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. LockByID/UpdateRating通过getDB参与调用方事务
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	// 1. 领域实体 → GORM模型
	model := &BookModel{
		Title:           b.Title,
		Author:          b.Author,
		Genre:           b.Genre,
		Description:     b.Description,
		PublicationYear: b.PublicationYear,
		CoverImage:      b.CoverImage,
		AverageRating:   b.AverageRating,
		TotalReviews:    b.TotalReviews,
	}

	// 2. 插入数据库
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 3. 回填自增ID
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// List 分页查询图书列表
// 过滤条件为LIKE子串匹配(utf8mb4默认排序规则大小写不敏感)
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	var models []BookModel
	var total int64

	query := r.db.WithContext(ctx).Model(&BookModel{})

	// 过滤条件(空串不过滤)
	if params.Author != "" {
		query = query.Where("author LIKE ?", "%"+params.Author+"%")
	}
	if params.Genre != "" {
		query = query.Where("genre LIKE ?", "%"+params.Genre+"%")
	}

	// 查询总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	// 排序(白名单字段,防SQL注入;方向缺省为desc)
	column := "created_at"
	switch params.SortBy {
	case "title":
		column = "title"
	case "publication_year":
		column = "publication_year"
	case "average_rating":
		column = "average_rating"
	}
	direction := "DESC"
	if params.Order == "asc" {
		direction = "ASC"
	}
	query = query.Order(column + " " + direction)

	// 分页(页码从1开始,超出范围返回空列表)
	offset := (params.Page - 1) * params.PageSize
	query = query.Limit(params.PageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	// 转换为领域实体
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, total, nil
}

// Search 按标题或作者搜索
func (r *bookRepository) Search(ctx context.Context, q string, page, pageSize int) ([]*book.Book, int64, error) {
	var models []BookModel
	var total int64

	keyword := "%" + q + "%"
	query := r.db.WithContext(ctx).Model(&BookModel{}).
		Where("title LIKE ? OR author LIKE ?", keyword, keyword)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询搜索结果总数失败")
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "搜索图书失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, total, nil
}

// LockByID 悲观锁查询图书(用于书评变更时锁定评分重算)
// SELECT FOR UPDATE锁定行:同一本书的并发书评变更在此串行化,
// 防止两个事务各自基于旧的书评集合重算后互相覆盖
func (r *bookRepository) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	db := getDB(ctx, r.db)
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "锁定图书失败")
	}

	return toBookEntity(&model), nil
}

// UpdateRating 更新派生评分字段
// 必须与书评写入处于同一事务(通过getDB参与事务)
func (r *bookRepository) UpdateRating(ctx context.Context, id uint, averageRating float64, totalReviews int) error {
	db := getDB(ctx, r.db)
	result := db.Model(&BookModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"average_rating": averageRating,
			"total_reviews":  totalReviews,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新图书评分失败")
	}

	if result.RowsAffected == 0 {
		// 评分字段未变化时RowsAffected也可能为0,再确认图书是否存在
		var model BookModel
		if err := db.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return book.ErrBookNotFound
			}
			return apperrors.Wrap(err, "查询图书失败")
		}
	}

	return nil
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:              model.ID,
		Title:           model.Title,
		Author:          model.Author,
		Genre:           model.Genre,
		Description:     model.Description,
		PublicationYear: model.PublicationYear,
		CoverImage:      model.CoverImage,
		AverageRating:   model.AverageRating,
		TotalReviews:    model.TotalReviews,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}
