package review

import (
	"math"
)

// AverageRating 根据评分总和与条数计算平均评分
// 规则:
// - count为0时返回0(图书没有任何书评)
// - 否则取算术平均,保留1位小数,采用四舍五入(half away from zero)
//
// 说明:评分恒为正数,math.Round对正数的行为就是四舍五入,
// 与前端展示约定一致(如(5+1+4)/3 → 3.3,(1+4)/2 → 2.5)
func AverageRating(sum int64, count int64) float64 {
	if count <= 0 {
		return 0
	}
	mean := float64(sum) / float64(count)
	return math.Round(mean*10) / 10
}
