package korean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHello123(t *testing.T) {
	got := DefaultNormalizer().Normalize("Hello123")
	assert.Equal(t, Decompose("에이치이엘엘오백이십삼"), got)

	for _, r := range got {
		assert.False(t, r >= '0' && r <= '9', "输出不应包含原始数字: %q", got)
		assert.False(t, r >= 'A' && r <= 'Z', "输出不应包含大写字母: %q", got)
	}
}

func TestNormalizeFlagsOff(t *testing.T) {
	n, err := NewNormalizer(nil, false, false)
	require.NoError(t, err)

	assert.Equal(t, "abc 123!", n.Normalize("ABC 123!"))
}

func TestNormalizeConversionRules(t *testing.T) {
	got := DefaultNormalizer().Normalize("50%")
	assert.Equal(t, Decompose("오십퍼센트"), got)
}

func TestNormalizeDropsUnsupported(t *testing.T) {
	n := DefaultNormalizer()

	// 表情、非谚文 CJK 与控制字符全部被静默丢弃
	assert.Equal(t, Decompose("안녕")+"  !", n.Normalize("안녕 😀 世界!"))
	assert.Equal(t, Decompose("안"), n.Normalize("\x00\x01안"))
	assert.Equal(t, "", n.Normalize("♥♦♣♠"))
}

func TestNormalizeIsolatedJamo(t *testing.T) {
	got := DefaultNormalizer().Normalize("ㄱ")
	assert.Equal(t, Decompose("기역"), got)
	assert.GreaterOrEqual(t, len([]rune(got)), 2)
	assert.NotEqual(t, "ㄱ", got)
}

func TestNormalizeWhitespaceCollapse(t *testing.T) {
	got := DefaultNormalizer().Normalize("안녕  \t\n 하세요")
	assert.Equal(t, Decompose("안녕 하세요"), got)
}

func TestNewNormalizerBadRule(t *testing.T) {
	tables := DefaultTables()
	tables.Rules = append(tables.Rules, RuleSpec{Pattern: "[", Replacement: ""})
	_, err := NewNormalizer(tables, true, true)
	assert.Error(t, err)
}

func TestNewNormalizerBadDigits(t *testing.T) {
	tables := DefaultTables()
	tables.DigitWords = tables.DigitWords[:3]
	_, err := NewNormalizer(tables, true, true)
	assert.Error(t, err)
}

// 任意输入都不应崩溃，这是前端的硬性契约
func FuzzNormalize(f *testing.F) {
	f.Add("안녕하세요")
	f.Add("Hello, world! 123")
	f.Add("ㄱㄴㄷ ㅏㅑㅓ")
	f.Add("😀\x00世界�")
	f.Add("00000")
	f.Add("123456789012345678901234567890123456789")
	f.Fuzz(func(t *testing.T, input string) {
		_ = DefaultNormalizer().Normalize(input)
		_ = ExpandNumeral(input)

		size := int64(DefaultTable().Size())
		for _, id := range TextToSequence(input) {
			if id < 0 || id >= size {
				t.Fatalf("ID %d 超出词表范围 [0, %d)", id, size)
			}
		}
	})
}
