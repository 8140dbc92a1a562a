package review

import (
	"context"
)

// Transactor 事务执行器
// 设计说明:
// 1. 在消费方定义接口(依赖倒置),由mysql.TxManager实现
// 2. 书评的三个变更用例都要求"书评写入+评分重算"原子生效,
//    要么都可见,要么都不可见
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
