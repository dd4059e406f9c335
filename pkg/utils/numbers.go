package utils

import (
	"fmt"
	"math"
)

// Successor 返回 x 的后继 x+1
func Successor(x int) int {
	return x + 1
}

// Successor1 与 Successor 等价，以函数值的形式定义
var Successor1 = func(x int) int { return x + 1 }

// Successor2 连续取两次后继，即 x+2
func Successor2(x int) int {
	return Successor(Successor(x))
}

// FloorMod 向下取整取模，结果与 m 同号
// Go 的 % 是截断取模，-1 % 2 == -1；FloorMod(-1, 2) == 1
// m 为 0 时与 % 一样 panic
func FloorMod(x, m int) int {
	r := x % m
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}

// IsEven 判断是否为偶数
func IsEven(x int) bool {
	return FloorMod(x, 2) == 0
}

// IsOdd 判断是否为奇数
// 使用 FloorMod，负奇数同样返回 true，因此恒有 IsOdd(x) == !IsEven(x)
func IsOdd(x int) bool {
	return FloorMod(x, 2) == 1
}

// Difference 返回 x 与 y 差的绝对值
// 用法示例：
//
//	Difference(999, 34) // 965
//	Difference(34, 999) // 965
func Difference(x, y int) int {
	if x > y {
		return x - y
	}
	return y - x
}

// Signum 符号函数：正数 1，零 0，负数 -1
func Signum(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// DistanceMeters 将起止里程（公里）换算为米
func DistanceMeters(start, end float64) float64 {
	return (end - start) * 1000
}

// Turns 计算车轮走完 start 到 end（公里）需要转动的圈数
// radius 单位为米，必须为有限正数，否则返回 ErrInvalidRadius
// 用法示例：
//
//	n, err := Turns(10, 50, 5)
//	// n == 40000 / (2π*5)
func Turns(start, end, radius float64) (float64, error) {
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return 0, fmt.Errorf("turns(%v, %v, %v): %w", start, end, radius, ErrInvalidRadius)
	}
	return DistanceMeters(start, end) / (2 * math.Pi * radius), nil
}
