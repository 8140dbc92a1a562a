package user

import (
	"context"
	"time"
)

// SessionStore 会话存储接口(认证用例的依赖)
// 设计说明:
// 1. 由应用层(使用方)定义接口,redis.SessionStore是生产实现
// 2. 接口只收录认证用例用到的方法,便于测试时用内存实现替换
type SessionStore interface {
	// SaveSession 保存用户会话,ttl为会话有效期
	SaveSession(ctx context.Context, userID uint, sessionData map[string]interface{}, ttl time.Duration) error

	// DeleteSession 删除用户会话(登出)
	DeleteSession(ctx context.Context, userID uint) error

	// AddToBlacklist 将token加入黑名单,过期自动移除
	AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error
}
