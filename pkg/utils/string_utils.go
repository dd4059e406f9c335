package utils

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	startsWithH = "Starts with H"
	endsWithA   = "Ends with A"
	lame        = "Lame"
)

// Capitalize 将首个字符转为大写，其余保持不变
// 按 rune 处理，大小写映射与区域设置无关
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// HelloName 返回 "Hello " + 首字母大写的 name
// name 为空时返回 ErrEmptyName
// 用法示例：
//
//	msg, _ := HelloName("joanna")
//	fmt.Println(msg) // 输出: Hello Joanna
func HelloName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("hello name: %w", ErrEmptyName)
	}
	return "Hello " + Capitalize(name), nil
}

// StringMan 先检查是否以 'H' 开头，再检查是否以 'A' 结尾，区分大小写
// 两者都满足时只报告 "Starts with H"
func StringMan(s string) string {
	switch {
	case strings.HasPrefix(s, "H"):
		return startsWithH
	case strings.HasSuffix(s, "A"):
		return endsWithA
	default:
		return lame
	}
}
