package mysql

import (
	"context"

	"gorm.io/gorm"
)

// txKey context中事务DB的键(私有类型避免冲突)
type txKey struct{}

// TxManager 事务管理器
// 设计说明:
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB(避免全局变量)
// 3. fn返回error时自动ROLLBACK,返回nil时自动COMMIT
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// fn函数内通过同一个ctx调用的所有Repository操作都会在同一事务中执行
//
// 使用示例:
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    // 1. 锁定图书行
//	    b, err := bookRepo.LockByID(ctx, bookID)
//	    if err != nil {
//	        return err
//	    }
//	    // 2. 写入书评
//	    if err := reviewRepo.Create(ctx, r); err != nil {
//	        return err // 自动回滚
//	    }
//	    // 3. 重算评分
//	    sum, count, err := reviewRepo.Aggregate(ctx, bookID)
//	    if err != nil {
//	        return err
//	    }
//	    return bookRepo.UpdateRating(ctx, bookID, avg, int(count))
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}
