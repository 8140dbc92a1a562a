package book

import (
	"time"
)

// DefaultCoverImage 封面图缺省占位图
const DefaultCoverImage = "https://via.placeholder.com/300x400?text=Book+Cover"

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是图书聚合的根实体
// 2. AverageRating/TotalReviews是派生字段,仅由书评聚合的重算流程更新,
//    不提供直接修改入口
// 3. 图书创建后不提供编辑/删除流程(当前范围内)
type Book struct {
	ID              uint
	Title           string  // 书名
	Author          string  // 作者
	Genre           string  // 类型
	Description     string  // 图书描述
	PublicationYear int     // 出版年份
	CoverImage      string  // 封面图URL(缺省为占位图)
	AverageRating   float64 // 平均评分(派生,保留1位小数)
	TotalReviews    int     // 书评总数(派生)
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewBook 创建新图书(工厂方法)
// coverImage为空时使用占位图
func NewBook(title, author, genre, description string, publicationYear int, coverImage string) *Book {
	if coverImage == "" {
		coverImage = DefaultCoverImage
	}
	now := time.Now()
	return &Book{
		Title:           title,
		Author:          author,
		Genre:           genre,
		Description:     description,
		PublicationYear: publicationYear,
		CoverImage:      coverImage,
		AverageRating:   0,
		TotalReviews:    0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
