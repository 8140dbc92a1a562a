package user

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/user"
)

// GetProfileUseCase 查询当前用户信息用例
type GetProfileUseCase struct {
	userService user.Service
}

// NewGetProfileUseCase 创建查询用户信息用例
func NewGetProfileUseCase(userService user.Service) *GetProfileUseCase {
	return &GetProfileUseCase{userService: userService}
}

// Execute 执行查询用例
// userID来自access token,不存在时返回ErrUserNotFound
func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uint) (*UserInfo, error) {
	u, err := uc.userService.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	info := toUserInfo(u)
	return &info, nil
}
