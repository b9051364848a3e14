package korean

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandNumeral(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "영"},
		{"00000", "영"},
		{"1", "일"},
		{"5", "오"},
		{"10", "십"},
		{"11", "십일"},
		{"20", "이십"},
		{"100", "백"},
		{"123", "백이십삼"},
		{"1000", "천"},
		{"1004", "천사"},
		{"10000", "만"},
		{"12345", "만이천삼백사십오"},
		{"100000000", "억"},
		{"0070", "칠십"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandNumeral(tt.input), "ExpandNumeral(%q)", tt.input)
	}
}

// 展开按位进行: 每个非零数位独立携带自己的数位词
func TestExpandNumeralPerPosition(t *testing.T) {
	assert.Equal(t, "이십만오만", ExpandNumeral("250000"))
	assert.Equal(t, "삼억이만", ExpandNumeral("300020000"))
}

// 个位的 1 从不省略，十位以上的 1 只读数位词
func TestExpandNumeralElision(t *testing.T) {
	assert.Equal(t, "일", ExpandNumeral("1"))
	assert.Equal(t, "십", ExpandNumeral("10"))
	assert.Equal(t, "십일", ExpandNumeral("11"))
	assert.Equal(t, "백십일", ExpandNumeral("111"))
	assert.NotEqual(t, "일십", ExpandNumeral("10"))
}

func TestExpandNumeralHugeInput(t *testing.T) {
	// 超出数位表覆盖范围也不能崩溃
	huge := strings.Repeat("9", 64)
	got := ExpandNumeral(huge)
	assert.NotEmpty(t, got)
}
