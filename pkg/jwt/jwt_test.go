package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

const testSecret = "test-secret-key"

// TestGenerateAndParse 测试Token生成与解析
func TestGenerateAndParse(t *testing.T) {
	m := NewManager(testSecret, time.Hour, 7*24*time.Hour)

	pair, err := m.GenerateToken(42, "zhangsan@example.com", "张三")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(3600), pair.ExpiresIn)

	claims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "zhangsan@example.com", claims.Email)
	assert.Equal(t, "张三", claims.Name)
	assert.Equal(t, "bookreview", claims.Issuer)
}

// TestParseInvalidToken 测试非法Token
func TestParseInvalidToken(t *testing.T) {
	m := NewManager(testSecret, time.Hour, 7*24*time.Hour)

	t.Run("乱码Token", func(t *testing.T) {
		_, err := m.ParseToken("not.a.token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("密钥不匹配", func(t *testing.T) {
		other := NewManager("another-secret", time.Hour, 7*24*time.Hour)
		pair, err := other.GenerateToken(1, "a@example.com", "a")
		require.NoError(t, err)

		_, err = m.ParseToken(pair.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

// TestExpiredToken 测试过期Token
func TestExpiredToken(t *testing.T) {
	// 有效期设为负值,生成即过期
	m := NewManager(testSecret, -time.Minute, 7*24*time.Hour)

	pair, err := m.GenerateToken(1, "a@example.com", "a")
	require.NoError(t, err)

	_, err = m.ParseToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

// TestRefreshAccessToken 测试刷新Access Token
func TestRefreshAccessToken(t *testing.T) {
	m := NewManager(testSecret, time.Hour, 7*24*time.Hour)

	pair, err := m.GenerateToken(42, "zhangsan@example.com", "张三")
	require.NoError(t, err)

	newToken, err := m.RefreshAccessToken(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := m.ParseToken(newToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
}
