package korean

import "strings"

// ExpandNumeral 将连续的十进制数字串展开为韩语读法
//
// 规则: 去掉前导零后为空则读 영; 个位数字从不省略; 其余位上的 1
// 只读数位词 (如 "10" -> 십 而不是 일십); 位上为 0 时不输出任何占位。
func (t *Tables) ExpandNumeral(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return t.DigitWords[0]
	}

	// 从个位开始逐位累积，i 为距个位的位置
	n := len(trimmed)
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		d := int(trimmed[n-1-i]) - '0'
		if d < 0 || d > 9 || d == 0 {
			continue
		}
		switch {
		case i == 0:
			parts = append(parts, t.DigitWords[d])
		case d == 1:
			parts = append(parts, t.magnitudeWord(i))
		default:
			parts = append(parts, t.DigitWords[d]+t.magnitudeWord(i))
		}
	}

	// 低位先累积，输出时反转为高位在前
	var b strings.Builder
	for k := len(parts) - 1; k >= 0; k-- {
		b.WriteString(parts[k])
	}
	return b.String()
}

// magnitudeWord 返回位置 i (i >= 1) 对应的数位词
//
// 1-3 位直接取 십/백/천; 4 位以上按韩语四位分组惯例，
// 以 (i mod 4) 的基础数位词与 (i div 4) 的分组词 (만/억/조…) 组合。
func (t *Tables) magnitudeWord(i int) string {
	if i < 4 {
		return t.MagnitudeWords[i-1]
	}
	group := i/4 + 2
	if group >= len(t.MagnitudeWords) {
		// 超出数位表覆盖范围时丢弃分组词而不是崩溃
		if i%4 == 0 {
			return ""
		}
		return t.MagnitudeWords[i%4-1]
	}
	if i%4 == 0 {
		return t.MagnitudeWords[group]
	}
	return t.MagnitudeWords[i%4-1] + t.MagnitudeWords[group]
}

// ExpandNumeral 使用默认数据表展开数字串
func ExpandNumeral(digits string) string {
	return defaultTables().ExpandNumeral(digits)
}
