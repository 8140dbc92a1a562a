package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// fakeRepository 内存版用户仓储(测试用)
type fakeRepository struct {
	users  map[uint]*User
	nextID uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{users: make(map[uint]*User), nextID: 1}
}

func (f *fakeRepository) Create(ctx context.Context, u *User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return apperrors.ErrEmailDuplicate
		}
	}
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = u
	return nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id uint) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// TestRegister 测试用户注册的业务规则
func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("正常注册", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		u, err := svc.Register(ctx, "张三", "zhangsan@example.com", "pass1234")
		require.NoError(t, err)

		assert.NotZero(t, u.ID)
		assert.Equal(t, "zhangsan@example.com", u.Email)
		// 密码必须以bcrypt哈希存储,绝不能是明文
		assert.NotEqual(t, "pass1234", u.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("pass1234")))
	})

	t.Run("邮箱格式非法", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		_, err := svc.Register(ctx, "张三", "not-an-email", "pass1234")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidParams, apperrors.GetAppError(err).Code)
	})

	t.Run("密码强度不足", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		// 太短
		_, err := svc.Register(ctx, "张三", "a@example.com", "p1")
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword)

		// 只有字母
		_, err = svc.Register(ctx, "张三", "a@example.com", "passwordonly")
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword)

		// 只有数字
		_, err = svc.Register(ctx, "张三", "a@example.com", "12345678")
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
	})

	t.Run("重复邮箱", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		_, err := svc.Register(ctx, "张三", "dup@example.com", "pass1234")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "李四", "dup@example.com", "pass5678")
		assert.ErrorIs(t, err, apperrors.ErrEmailDuplicate)
	})
}

// TestLogin 测试用户登录
// 安全要求:邮箱不存在与密码错误返回同一个错误
func TestLogin(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) Service {
		svc := NewService(newFakeRepository())
		_, err := svc.Register(ctx, "张三", "zhangsan@example.com", "pass1234")
		require.NoError(t, err)
		return svc
	}

	t.Run("正常登录", func(t *testing.T) {
		svc := setup(t)
		u, err := svc.Login(ctx, "zhangsan@example.com", "pass1234")
		require.NoError(t, err)
		assert.Equal(t, "zhangsan@example.com", u.Email)
	})

	t.Run("邮箱不存在", func(t *testing.T) {
		svc := setup(t)
		_, err := svc.Login(ctx, "nobody@example.com", "pass1234")
		assert.ErrorIs(t, err, apperrors.ErrAuthFailed)
	})

	t.Run("密码错误", func(t *testing.T) {
		svc := setup(t)
		_, err := svc.Login(ctx, "zhangsan@example.com", "wrongpass1")
		assert.ErrorIs(t, err, apperrors.ErrAuthFailed)
	})
}
