package korean

import (
	"sync"

	"github.com/samber/lo"
)

// Table 符号与整数 ID 的双向映射 (模型词表)
//
// ID 按符号在序列中的位置分配，构建后不可变，训练与推理必须
// 使用同一份词表。可被多协程并发读取。
type Table struct {
	symbols    []rune
	symbolToID map[rune]int64
	idToSymbol map[int64]rune
}

// NewTable 根据有序符号序列构建词表
//
// 重复符号只保留首次出现的位置
func NewTable(symbols []rune) *Table {
	symbols = lo.Uniq(symbols)
	t := &Table{
		symbols:    symbols,
		symbolToID: make(map[rune]int64, len(symbols)),
		idToSymbol: make(map[int64]rune, len(symbols)),
	}
	for i, s := range symbols {
		t.symbolToID[s] = int64(i)
		t.idToSymbol[int64(i)] = s
	}
	return t
}

// Size 返回词表大小
func (t *Table) Size() int {
	return len(t.symbols)
}

// Symbols 返回词表符号的拷贝，顺序即 ID
func (t *Table) Symbols() []rune {
	return append([]rune(nil), t.symbols...)
}

// DefaultSymbols 返回默认词表符号序列
//
// 依次为: pad、空格与标点、数字、小写字母、全部组合用谚文字母
// (19 声母 + 21 中声 + 27 终声)
func DefaultSymbols() []rune {
	symbols := []rune{'_', ' ', ',', '.', '?', '!'}
	for r := '0'; r <= '9'; r++ {
		symbols = append(symbols, r)
	}
	for r := 'a'; r <= 'z'; r++ {
		symbols = append(symbols, r)
	}
	for i := 0; i < numLeads; i++ {
		symbols = append(symbols, rune(leadBase+i))
	}
	for i := 0; i < numVowels; i++ {
		symbols = append(symbols, rune(vowelBase+i))
	}
	for i := 1; i < numTails; i++ {
		symbols = append(symbols, rune(tailBase+i))
	}
	return symbols
}

// Table 构建该数据表对应的词表；未配置 Symbols 时使用默认词表
func (t *Tables) Table() *Table {
	if len(t.Symbols) == 0 {
		return DefaultTable()
	}
	runes := make([]rune, 0, len(t.Symbols))
	for _, s := range t.Symbols {
		for _, r := range s {
			runes = append(runes, r)
			break
		}
	}
	return NewTable(runes)
}

var (
	defaultTable     *Table
	defaultTableOnce sync.Once
)

// DefaultTable 惰性构建并复用默认词表
func DefaultTable() *Table {
	defaultTableOnce.Do(func() {
		defaultTable = NewTable(DefaultSymbols())
	})
	return defaultTable
}
