package book

import (
	"context"
	"strings"
	"time"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装图书的业务规则校验与查询入口
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// AddBook 添加图书
	// 业务规则:
	// - 标题/作者/类型/描述必填
	// - 出版年份在[1000, 当前年份+1]之间
	// - 封面图为空时使用占位图
	AddBook(ctx context.Context, title, author, genre, description string, publicationYear int, coverImage string) (*Book, error)

	// GetBookByID 根据ID获取图书详情
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// ListBooks 分页查询图书列表
	// 公开接口,不需要权限校验
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// SearchBooks 按标题或作者搜索图书
	// 业务规则:关键词不能为空
	SearchBooks(ctx context.Context, query string, page, pageSize int) ([]*Book, int64, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// AddBook 添加图书
func (s *service) AddBook(ctx context.Context, title, author, genre, description string, publicationYear int, coverImage string) (*Book, error) {
	// 出版年份校验(binding tag已保证必填字段,这里做业务范围校验)
	if publicationYear < 1000 || publicationYear > time.Now().Year()+1 {
		return nil, ErrInvalidYear
	}

	b := NewBook(
		strings.TrimSpace(title),
		strings.TrimSpace(author),
		strings.TrimSpace(genre),
		strings.TrimSpace(description),
		publicationYear,
		strings.TrimSpace(coverImage),
	)

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// ListBooks 分页查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params)
}

// SearchBooks 按标题或作者搜索图书
func (s *service) SearchBooks(ctx context.Context, query string, page, pageSize int) ([]*Book, int64, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, 0, ErrEmptyQuery
	}
	return s.repo.Search(ctx, query, page, pageSize)
}
