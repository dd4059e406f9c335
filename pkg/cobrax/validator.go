package cobrax

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// ==================== RequiredValidator ====================

func (v *RequiredValidator) Validate(value any) error {
	switch val := value.(type) {
	case nil:
		return errors.New(v.getMessage())
	case string:
		if val == "" || (!v.AllowBlank && strings.TrimSpace(val) == "") {
			return errors.New(v.getMessage())
		}
	case []string:
		if len(val) == 0 {
			return errors.New(v.getMessage())
		}
	}
	// 数值和布尔类型的零值视为有效值
	return nil
}

func (v *RequiredValidator) getMessage() string {
	if v.Message != "" {
		return v.Message
	}
	return "参数不能为空"
}

// ==================== PositiveValidator ====================

func (v *PositiveValidator) Validate(value any) error {
	var f float64
	switch val := value.(type) {
	case int:
		f = float64(val)
	case int64:
		f = float64(val)
	case float64:
		f = val
	default:
		return errors.New("PositiveValidator 只能验证数值类型")
	}

	if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		if v.Message != "" {
			return errors.New(v.Message)
		}
		return fmt.Errorf("参数值必须为正数，当前为 %v", value)
	}
	return nil
}

// ==================== OneOfValidator ====================

func (v *OneOfValidator) Validate(value any) error {
	str, ok := value.(string)
	if !ok {
		return errors.New("OneOfValidator 只能验证字符串类型")
	}

	if !slices.Contains(v.Options, str) {
		if v.Message != "" {
			return errors.New(v.Message)
		}
		return fmt.Errorf("参数值必须是 %s 之一，当前为 %q", strings.Join(v.Options, ", "), str)
	}
	return nil
}

// ==================== Command 校验方法 ====================

// ValidateFlags 验证命令的所有标志
func (c *Command) ValidateFlags() error {
	for flagName, validators := range c.validators {
		flag := c.Command.Flags().Lookup(flagName)
		if flag == nil {
			continue
		}

		var value any
		var err error

		switch flag.Value.Type() {
		case "string":
			value, err = c.Command.Flags().GetString(flagName)
		case "int":
			value, err = c.Command.Flags().GetInt(flagName)
		case "int64":
			value, err = c.Command.Flags().GetInt64(flagName)
		case "bool":
			value, err = c.Command.Flags().GetBool(flagName)
		case "float64":
			value, err = c.Command.Flags().GetFloat64(flagName)
		case "stringSlice":
			value, err = c.Command.Flags().GetStringSlice(flagName)
		default:
			value = flag.Value.String()
		}

		if err != nil {
			return fmt.Errorf("获取标志 %s 值失败: %w", flagName, err)
		}

		for _, validator := range validators {
			if err := validator.Validate(value); err != nil {
				return fmt.Errorf("参数 %s 验证失败: %w", flagName, err)
			}
		}
	}

	return nil
}

// AddParamValidator 为命令的特定标志添加参数校验器
func (c *Command) AddParamValidator(flagName string, validator ParamValidator) {
	if c.validators == nil {
		c.validators = make(map[string][]ParamValidator)
	}
	c.validators[flagName] = append(c.validators[flagName], validator)
}
