package dto

// SignupRequest HTTP层注册请求
// 说明：HTTP层的DTO，包含参数验证tag
type SignupRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50" example:"张三"`
	Email    string `json:"email" binding:"required,email" example:"zhangsan@example.com"`
	Password string `json:"password" binding:"required,min=8,max=20" example:"pass1234"`
}

// LoginRequest HTTP层登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"zhangsan@example.com"`
	Password string `json:"password" binding:"required" example:"pass1234"`
}

// UserInfo 用户公开信息(不包含密码)
type UserInfo struct {
	ID        uint   `json:"id" example:"1"`
	Name      string `json:"name" example:"张三"`
	Email     string `json:"email" example:"zhangsan@example.com"`
	CreatedAt string `json:"created_at" example:"2024-01-15 10:30:00"`
}

// AuthResponse 认证响应(注册/登录共用)
type AuthResponse struct {
	User         UserInfo `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in" example:"86400"` // access token有效期(秒)
}
