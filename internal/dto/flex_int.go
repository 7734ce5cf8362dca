package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexInt 宽松整数：接受 JSON 数字、数字字符串或布尔值
// 前端常以字符串提交 student_id，cancelled 也可能以 true/false 提交
type FlexInt int64

// UnmarshalJSON 实现 json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "null":
		return nil
	case "true":
		*f = 1
		return nil
	case "false":
		*f = 0
		return nil
	}

	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	n, err := parseInteger(raw)
	if err != nil {
		return fmt.Errorf("无法转换为整数: %s", string(b))
	}
	*f = FlexInt(n)
	return nil
}

// Int64 返回 int64 值
func (f FlexInt) Int64() int64 { return int64(f) }

// parseInteger 先按整数解析，失败再按浮点截断（4.0 → 4）
func parseInteger(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	// 超出 int64 范围时转换结果未定义
	t := math.Trunc(v)
	if t < math.MinInt64 || t >= math.MaxInt64 {
		return 0, fmt.Errorf("integer out of range %q", s)
	}
	return int64(t), nil
}
