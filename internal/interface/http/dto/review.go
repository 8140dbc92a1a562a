package dto

// SubmitReviewRequest HTTP提交书评请求
// rating限定1-5星,comment最长1000字符(与领域规则一致,双层防护)
type SubmitReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5" example:"5"`
	Comment string `json:"comment" binding:"required,max=1000" example:"A timeless classic."`
}

// EditReviewRequest HTTP修改书评请求
// 修改与提交使用相同的字段与校验规则
type EditReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5" example:"4"`
	Comment string `json:"comment" binding:"required,max=1000" example:"Still great on a re-read."`
}
