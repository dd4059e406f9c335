// Package demo 按固定顺序调用 utils 中的练习函数并逐行输出结果
package demo

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tedwangl/go-basics/pkg/logger/zapx"
	"github.com/tedwangl/go-basics/pkg/utils"
	"github.com/tedwangl/go-basics/pkg/utils/jsonx"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat 输出格式不是 text 或 json
var ErrUnknownFormat = errors.New("unknown output format")

type (
	// Scenario 一次固定参数的函数调用
	Scenario struct {
		Name string
		Args []any
		Eval func() (any, error)
	}

	// Result 一次调用的结果
	Result struct {
		Name  string `json:"name"`
		Input string `json:"input"`
		Value any    `json:"value"`
	}

	// Option 运行选项
	Option func(*options)

	options struct {
		format string
		labels bool
	}
)

// WithFormat 设置输出格式 text | json
func WithFormat(format string) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithLabels text 格式下在每行前加上 "name(args): "
func WithLabels(labels bool) Option {
	return func(o *options) {
		o.labels = labels
	}
}

// Scenarios 返回固定顺序的演示调用，Eval 在 Evaluate 时才执行
func Scenarios() []Scenario {
	return []Scenario{
		{Name: "successor", Args: []any{2}, Eval: func() (any, error) {
			return utils.Successor(2), nil
		}},
		{Name: "successor1", Args: []any{2}, Eval: func() (any, error) {
			return utils.Successor1(2), nil
		}},
		{Name: "successor2", Args: []any{3}, Eval: func() (any, error) {
			return utils.Successor2(3), nil
		}},
		{Name: "isEven", Args: []any{1}, Eval: func() (any, error) {
			return utils.IsEven(1), nil
		}},
		{Name: "isEven", Args: []any{2}, Eval: func() (any, error) {
			return utils.IsEven(2), nil
		}},
		{Name: "difference", Args: []any{999, 34}, Eval: func() (any, error) {
			return utils.Difference(999, 34), nil
		}},
		{Name: "signum", Args: []any{-26}, Eval: func() (any, error) {
			return utils.Signum(-26), nil
		}},
		{Name: "turns", Args: []any{10.0, 50.0, 5.0}, Eval: func() (any, error) {
			return utils.Turns(10.0, 50.0, 5.0)
		}},
		{Name: "helloName", Args: []any{"joanna"}, Eval: func() (any, error) {
			return utils.HelloName("joanna")
		}},
		{Name: "stringMan", Args: []any{"Hello world"}, Eval: func() (any, error) {
			return utils.StringMan("Hello world"), nil
		}},
		{Name: "stringMan", Args: []any{"Joanna"}, Eval: func() (any, error) {
			return utils.StringMan("Joanna"), nil
		}},
		{Name: "stringMan", Args: []any{"JoannA"}, Eval: func() (any, error) {
			return utils.StringMan("JoannA"), nil
		}},
	}
}

// Evaluate 执行单个场景
func Evaluate(s Scenario) (Result, error) {
	v, err := s.Eval()
	if err != nil {
		return Result{}, fmt.Errorf("%s(%s): %w", s.Name, FormatArgs(s.Args), err)
	}
	return Result{Name: s.Name, Input: FormatArgs(s.Args), Value: v}, nil
}

// Run 依次执行所有场景并写入 w，遇到错误立即返回
func Run(w io.Writer, opts ...Option) error {
	o := options{format: FormatText}
	for _, opt := range opts {
		opt(&o)
	}
	if o.format != FormatText && o.format != FormatJSON {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, o.format)
	}

	for i, s := range Scenarios() {
		r, err := Evaluate(s)
		if err != nil {
			return err
		}
		zapx.Debugw("scenario evaluated",
			zapx.Field("index", i),
			zapx.Field("name", r.Name),
			zapx.Field("input", r.Input),
		)
		if err := write(w, r, o); err != nil {
			return fmt.Errorf("write %s: %w", r.Name, err)
		}
	}

	return nil
}

func write(w io.Writer, r Result, o options) error {
	if o.format == FormatJSON {
		return jsonx.WriteLine(w, r)
	}

	line := Format(r.Value)
	if o.labels {
		line = fmt.Sprintf("%s(%s): %s", r.Name, r.Input, line)
	}
	_, err := io.WriteString(w, line+"\n")
	return err
}

// Format 将结果格式化为一行文本
// 浮点数使用最短的可还原表示
func Format(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

// FormatArgs 参数以逗号分隔，字符串加引号
func FormatArgs(args []any) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		if s, ok := a.(string); ok {
			parts = append(parts, strconv.Quote(s))
			continue
		}
		parts = append(parts, Format(a))
	}
	return strings.Join(parts, ", ")
}
