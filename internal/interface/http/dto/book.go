package dto

// AddBookRequest HTTP添加图书请求
// validator tag说明:
// - required: 必填字段
// - min/max: 数值范围校验
// - omitempty,url: 封面图可空,填了必须是合法URL
type AddBookRequest struct {
	Title           string `json:"title" binding:"required,max=200" example:"1984"`
	Author          string `json:"author" binding:"required,max=100" example:"George Orwell"`
	Genre           string `json:"genre" binding:"required,max=50" example:"Dystopian"`
	Description     string `json:"description" binding:"required,max=5000" example:"A novel about surveillance"`
	PublicationYear int    `json:"publication_year" binding:"required" example:"1949"`
	CoverImage      string `json:"cover_image" binding:"omitempty,url,max=500" example:"https://example.com/cover.jpg"`
}

// ListBooksRequest HTTP图书列表请求(query参数)
type ListBooksRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"10"`
	Author   string `form:"author" binding:"omitempty,max=100" example:"Orwell"`
	Genre    string `form:"genre" binding:"omitempty,max=50" example:"Dystopian"`
	SortBy   string `form:"sort_by" binding:"omitempty,oneof=created_at title publication_year average_rating" example:"created_at"`
	Order    string `form:"order" binding:"omitempty,oneof=asc desc" example:"desc"`
}

// SearchBooksRequest HTTP图书搜索请求(query参数)
// q必填:空查询直接在参数校验阶段拒绝
type SearchBooksRequest struct {
	Query    string `form:"q" binding:"required,max=200" example:"orwell"`
	Page     int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"10"`
}

// BookDetailQuery 图书详情页的书评分页参数
type BookDetailQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100" example:"5"`
}
