package korean

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"
	"sync"
)

// RuleSpec 定义一条符号转换规则 (正则模式 -> 替换文本)
type RuleSpec struct {
	Pattern     string `json:"pattern"`
	Replacement string `json:"replacement"`
}

// Tables 汇总韩语前端所需的全部语言数据表
//
// 所有表都可以通过 JSON 文件外部加载 (见 LoadTables)，无需修改代码。
// 构建后视为只读，可被多协程并发使用。
type Tables struct {
	// Symbols 模型词表，顺序即 ID; 为空时使用 DefaultSymbols
	// 训练与推理的词表必须完全一致，否则模型权重失效
	Symbols []string `json:"symbols,omitempty"`
	// DigitWords 数字 0-9 的读法
	DigitWords []string `json:"digit_words"`
	// MagnitudeWords 数位词，依次为 십 백 천 만 억 조 경 해
	MagnitudeWords []string `json:"magnitude_words"`
	// AlphaPron 字母 a-z 的韩语读法
	AlphaPron map[string]string `json:"alpha_pron"`
	// IrregularNames 不符合常规命名规律的孤立辅音名称，直接整体替换
	IrregularNames map[string]string `json:"irregular_names"`
	// NamingVowels 孤立辅音命名时第二个音节的声母+元音，默认 ㅇㅡ
	NamingVowels map[string]string `json:"naming_vowels"`
	// Rules 按优先级排列的转换规则，顺序敏感
	Rules []RuleSpec `json:"rules"`
}

// DefaultTables 返回内置的标准语言数据表
func DefaultTables() *Tables {
	return &Tables{
		DigitWords:     []string{"영", "일", "이", "삼", "사", "오", "육", "칠", "팔", "구"},
		MagnitudeWords: []string{"십", "백", "천", "만", "억", "조", "경", "해"},
		AlphaPron: map[string]string{
			"a": "에이", "b": "비", "c": "씨", "d": "디", "e": "이",
			"f": "에프", "g": "지", "h": "에이치", "i": "아이", "j": "제이",
			"k": "케이", "l": "엘", "m": "엠", "n": "엔", "o": "오",
			"p": "피", "q": "큐", "r": "알", "s": "에스", "t": "티",
			"u": "유", "v": "브이", "w": "더블유", "x": "엑스", "y": "와이",
			"z": "제트",
		},
		IrregularNames: map[string]string{
			"ㄲ": "쌍기역", "ㄸ": "쌍디귿", "ㅃ": "쌍비읍",
			"ㅆ": "쌍시옷", "ㅉ": "쌍지읒",
		},
		NamingVowels: map[string]string{
			"ㄱ": "ㅇㅕ", "ㄷ": "ㄱㅡ", "ㅅ": "ㅇㅗ",
		},
		Rules: []RuleSpec{
			{Pattern: `[;:·ㆍ]`, Replacement: ","},
			{Pattern: "[‘’“”\"']", Replacement: ""},
			{Pattern: `[~∼〜]`, Replacement: ""},
			{Pattern: `…`, Replacement: "."},
			{Pattern: `%`, Replacement: "퍼센트"},
			{Pattern: `\+`, Replacement: "플러스"},
			{Pattern: `&`, Replacement: "앤드"},
			{Pattern: `#`, Replacement: "샵"},
			{Pattern: `@`, Replacement: "골뱅이"},
			{Pattern: `℃`, Replacement: "도"},
		},
	}
}

// LoadTables 从 JSON 文件加载语言数据表，缺失字段回落到默认值
func LoadTables(path string) (*Tables, error) {
	tables := DefaultTables()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, tables); err != nil {
		return nil, err
	}
	return tables, nil
}

// LoadSymbols 从文本文件加载词表
//
// 数据格式: 每行一个符号，行号即 ID
func LoadSymbols(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var symbols []rune
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		for _, r := range line {
			symbols = append(symbols, r)
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewTable(symbols), nil
}

var (
	defaultTablesVal  *Tables
	defaultTablesOnce sync.Once
)

func defaultTables() *Tables {
	defaultTablesOnce.Do(func() {
		defaultTablesVal = DefaultTables()
	})
	return defaultTablesVal
}
