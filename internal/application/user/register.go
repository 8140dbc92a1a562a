package user

import (
	"context"
	"log"
	"time"

	"github.com/xiebiao/bookreview/internal/domain/user"
	"github.com/xiebiao/bookreview/pkg/jwt"
)

// RegisterUseCase 用户注册用例
// 注册成功后直接颁发token(免二次登录)
type RegisterUseCase struct {
	userService  user.Service
	jwtManager   *jwt.Manager
	sessionStore SessionStore
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service, jwtManager *jwt.Manager, sessionStore SessionStore) *RegisterUseCase {
	return &RegisterUseCase{
		userService:  userService,
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// RegisterRequest 注册请求DTO
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// UserInfo 用户公开信息DTO
// 不包含密码哈希
type UserInfo struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// AuthResponse 认证响应DTO(注册/登录共用)
type AuthResponse struct {
	User         UserInfo `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"`
}

// Execute 执行注册用例
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	// 1. 领域服务完成校验+密码哈希+落库(邮箱重复返回ErrEmailDuplicate)
	u, err := uc.userService.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	// 2. 注册即登录:颁发token并建立会话
	return uc.issueTokens(ctx, u)
}

// issueTokens 颁发token对并写入Redis会话
// 注册与登录共用该流程
func (uc *RegisterUseCase) issueTokens(ctx context.Context, u *user.User) (*AuthResponse, error) {
	pair, err := uc.jwtManager.GenerateToken(u.ID, u.Email, u.Name)
	if err != nil {
		return nil, err
	}

	// 会话存储失败不阻断认证流程,但要留下日志便于排查Redis故障
	if err := uc.sessionStore.SaveSession(ctx, u.ID, map[string]interface{}{
		"email":      u.Email,
		"name":       u.Name,
		"login_time": time.Now().Format(time.RFC3339),
	}, uc.jwtManager.RefreshTokenExpire()); err != nil {
		log.Printf("保存用户会话失败 user_id=%d: %v", u.ID, err)
	}

	return &AuthResponse{
		User:         toUserInfo(u),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    int64(uc.jwtManager.AccessTokenExpire().Seconds()),
	}, nil
}

// toUserInfo 领域实体 → 公开信息DTO
func toUserInfo(u *user.User) UserInfo {
	return UserInfo{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
