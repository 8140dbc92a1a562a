package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// newDryRunDB 构造只生成SQL不执行的GORM实例,并捕获生成的查询语句
// DryRun模式下不建立任何数据库连接,用于断言仓储发出的锁子句
func newDryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		DSN:                       "root:root@tcp(127.0.0.1:3306)/bookreview_test?charset=utf8mb4&parseTime=True",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	captured := &[]string{}
	err = db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		*captured = append(*captured, tx.Statement.SQL.String())
	})
	require.NoError(t, err)

	return db, captured
}

// 评分聚合必须是FOR SHARE当前读:REPEATABLE READ下事务的首个
// 普通SELECT会固定快照,之后即使拿到了图书行锁,快照读的聚合
// 仍看不到其他事务已提交的书评变更,会把过期评分写回图书行
func TestAggregateUsesShareLock(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewReviewRepository(db)

	_, _, err := repo.Aggregate(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, *captured, 1)
	sql := (*captured)[0]
	assert.Contains(t, sql, "FOR SHARE")
	assert.Contains(t, sql, "COALESCE(SUM(rating), 0)")
}

// 图书行锁必须是FOR UPDATE:同一本书的并发书评变更在此串行化
func TestLockByIDUsesUpdateLock(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewBookRepository(db)

	// DryRun不执行查询,返回值无意义,只关心生成的SQL
	_, err := repo.LockByID(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, *captured, 1)
	assert.Contains(t, (*captured)[0], "FOR UPDATE")
}
