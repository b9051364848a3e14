package korean

import "strings"

// 谚文音节块按 Unicode 固定算术组合: 基准码位 0xAC00 起，
// 每个声母对应 21 个中声 × 28 种终声状态
const (
	syllableBase = 0xAC00
	syllableEnd  = 0xD7A3

	leadBase  = 0x1100 // 现代声母 ᄀ-ᄒ
	vowelBase = 0x1161 // 中声 ᅡ-ᅵ
	tailBase  = 0x11A7 // 终声区偏移基准, 下标 1-27 对应 ᆨ-ᇂ

	numLeads  = 19
	numVowels = 21
	numTails  = 28 // 下标 0 表示无终声
)

// 兼容字母表 (ㄱ-ㅎ, ㅏ-ㅣ)，顺序与音节算术下标一致
var (
	compatLeads = []rune{
		'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ',
		'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
	}
	compatVowels = []rune{
		'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ',
		'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ',
		'ㅡ', 'ㅢ', 'ㅣ',
	}
	compatTails = []rune{
		0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ',
		'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ',
		'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
	}

	leadIndex  = buildIndex(compatLeads)
	vowelIndex = buildIndex(compatVowels)
	tailIndex  = buildIndex(compatTails)
)

func buildIndex(list []rune) map[rune]int {
	idx := make(map[rune]int, len(list))
	for i, r := range list {
		if r != 0 {
			idx[r] = i
		}
	}
	return idx
}

// IsSyllable 判断是否为组合完成的谚文音节
func IsSyllable(r rune) bool {
	return r >= syllableBase && r <= syllableEnd
}

// IsCompatConsonant 判断是否为孤立辅音字母 (ㄱ-ㅎ)
func IsCompatConsonant(r rune) bool {
	return r >= 'ㄱ' && r <= 'ㅎ'
}

// IsCompatVowel 判断是否为孤立元音字母 (ㅏ-ㅣ)
func IsCompatVowel(r rune) bool {
	return r >= 'ㅏ' && r <= 'ㅣ'
}

// DecomposeSyllable 将单个音节拆解为 2 或 3 个字母 (声母/中声/终声)
//
// 返回的是组合用字母码位 (与 NFD 规范化结果一致)；终声下标 0 代表
// 无终声，不输出符号。非音节输入返回 nil。
func DecomposeSyllable(r rune) []rune {
	if !IsSyllable(r) {
		return nil
	}
	offset := int(r - syllableBase)
	lead := offset / (numVowels * numTails)
	vowel := (offset / numTails) % numVowels
	tail := offset % numTails

	jamo := []rune{rune(leadBase + lead), rune(vowelBase + vowel)}
	if tail != 0 {
		jamo = append(jamo, rune(tailBase+tail))
	}
	return jamo
}

// ComposeJamo 是 DecomposeSyllable 的逆运算
//
// 输入 2 或 3 个组合用字母 (声母/中声/可选终声)，重建原音节
func ComposeJamo(jamo []rune) (rune, bool) {
	if len(jamo) != 2 && len(jamo) != 3 {
		return 0, false
	}
	lead := int(jamo[0]) - leadBase
	vowel := int(jamo[1]) - vowelBase
	if lead < 0 || lead >= numLeads || vowel < 0 || vowel >= numVowels {
		return 0, false
	}
	tail := 0
	if len(jamo) == 3 {
		tail = int(jamo[2]) - tailBase
		if tail < 1 || tail >= numTails {
			return 0, false
		}
	}
	return rune(syllableBase + (lead*numVowels+vowel)*numTails + tail), true
}

// Compose 由兼容字母组合音节，tail 传 0 表示无终声
func Compose(lead, vowel, tail rune) (rune, bool) {
	li, ok := leadIndex[lead]
	if !ok {
		return 0, false
	}
	vi, ok := vowelIndex[vowel]
	if !ok {
		return 0, false
	}
	ti := 0
	if tail != 0 {
		ti, ok = tailIndex[tail]
		if !ok {
			return 0, false
		}
	}
	return rune(syllableBase + (li*numVowels+vi)*numTails + ti), true
}

// Decompose 将文本中的音节与孤立字母展开为字母级符号序列
//
// 孤立元音冠以哑辅音 ㅇ 组合成音节后拆解；孤立辅音按其名称读出
// (如 ㄴ -> 니은)。其余字符原样保留。
func (t *Tables) Decompose(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch {
		case IsSyllable(r):
			b.WriteString(string(DecomposeSyllable(r)))
		case IsCompatVowel(r):
			if s, ok := Compose('ㅇ', r, 0); ok {
				b.WriteString(string(DecomposeSyllable(s)))
			}
		case IsCompatConsonant(r):
			b.WriteString(t.consonantName(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// consonantName 合成孤立辅音的名称并展开为字母序列
//
// 常规命名: 辅音+ㅣ 加上 第二音节+同辅音收尾，第二音节默认为 으
// (如 ㄴ -> 니은)；ㄱ/ㄷ/ㅅ 的第二音节按惯用名特殊处理 (기역/디귿/시옷)。
// 完全不规则的名称 (双辅音等) 在 IrregularNames 中整体替换。
func (t *Tables) consonantName(c rune) string {
	if name, ok := t.IrregularNames[string(c)]; ok {
		return t.Decompose(name)
	}

	second := []rune{'ㅇ', 'ㅡ'}
	if override, ok := t.NamingVowels[string(c)]; ok {
		if rs := []rune(override); len(rs) == 2 {
			second = rs
		}
	}

	// 复合终声字母无法充当声母，组合失败时静默丢弃
	first, ok := Compose(c, 'ㅣ', 0)
	if !ok {
		return ""
	}
	rest, ok := Compose(second[0], second[1], c)
	if !ok {
		return ""
	}
	return string(DecomposeSyllable(first)) + string(DecomposeSyllable(rest))
}

// Decompose 使用默认数据表展开文本
func Decompose(text string) string {
	return defaultTables().Decompose(text)
}
