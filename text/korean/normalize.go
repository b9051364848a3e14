package korean

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// rule 编译后的转换规则
type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Normalizer 文本标准化器
//
// 流程固定为: 小写 -> 符号转换规则 -> 字母读法(可选) -> 空白折叠
// -> 字符过滤 -> 数字展开(可选) -> 谚文拆解。
// 先过滤后展开数字，保证展开产物不会再被过滤规则丢弃。
// 构建后不可变，可被多协程并发使用。
type Normalizer struct {
	tables          *Tables
	rules           []rule
	convertAlphabet bool
	convertNumeral  bool
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// NewNormalizer 构建标准化器并编译全部转换规则
//
// tables 传 nil 时使用内置默认数据表
func NewNormalizer(tables *Tables, convertAlphabet, convertNumeral bool) (*Normalizer, error) {
	if tables == nil {
		tables = DefaultTables()
	}
	if len(tables.DigitWords) < 10 {
		return nil, fmt.Errorf("数字读法表不完整: 需要 10 项, 实际 %d 项", len(tables.DigitWords))
	}

	rules := make([]rule, 0, len(tables.Rules))
	for _, spec := range tables.Rules {
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			return nil, fmt.Errorf("编译转换规则 %q 失败: %w", spec.Pattern, err)
		}
		rules = append(rules, rule{pattern: re, replacement: spec.Replacement})
	}

	return &Normalizer{
		tables:          tables,
		rules:           rules,
		convertAlphabet: convertAlphabet,
		convertNumeral:  convertNumeral,
	}, nil
}

// Normalize 将原始文本标准化为字母级符号序列
//
// 对任意输入都不会失败: 允许集合之外的字符被静默丢弃
func (n *Normalizer) Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))

	// 规则顺序敏感，后面的规则可作用于前面规则的输出
	for _, r := range n.rules {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}

	if n.convertAlphabet {
		text = n.spellAlphabet(text)
	}

	text = whitespaceRe.ReplaceAllString(text, " ")
	text = filterAllowed(text)

	if n.convertNumeral {
		text = n.expandDigitRuns(text)
	}

	return n.tables.Decompose(text)
}

// spellAlphabet 将 a-z 替换为配置的韩语读法
func (n *Normalizer) spellAlphabet(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r >= 'a' && r <= 'z' {
			if pron, ok := n.tables.AlphaPron[string(r)]; ok {
				b.WriteString(pron)
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// filterAllowed 丢弃允许集合之外的所有字符
//
// 允许: 数字、小写字母、谚文音节与孤立字母、空格以及 ,.?!
func filterAllowed(text string) string {
	var b strings.Builder
	for _, r := range text {
		if isAllowed(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isAllowed(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
	case r >= 'a' && r <= 'z':
	case IsSyllable(r):
	case IsCompatConsonant(r) || IsCompatVowel(r):
	case r == ' ' || r == ',' || r == '.' || r == '?' || r == '!':
	default:
		return false
	}
	return true
}

// expandDigitRuns 两段式扫描: 切分出极大数字串替换为读法，其余原样保留
func (n *Normalizer) expandDigitRuns(text string) string {
	var b strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); {
		if runes[i] < '0' || runes[i] > '9' {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
			j++
		}
		b.WriteString(n.tables.ExpandNumeral(string(runes[i:j])))
		i = j
	}
	return b.String()
}

var (
	defaultNormalizer     *Normalizer
	defaultNormalizerOnce sync.Once
)

// DefaultNormalizer 返回启用全部可选转换的默认标准化器
func DefaultNormalizer() *Normalizer {
	defaultNormalizerOnce.Do(func() {
		n, err := NewNormalizer(nil, true, true)
		if err != nil {
			// 内置默认数据表恒定合法
			panic(err)
		}
		defaultNormalizer = n
	})
	return defaultNormalizer
}
