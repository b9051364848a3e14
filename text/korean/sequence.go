package korean

import "strings"

// ToIDs 将符号串映射为 ID 序列
//
// 不在词表中的符号被静默丢弃，这是有意的有损策略而非错误
func (t *Table) ToIDs(symbols string) []int64 {
	ids := make([]int64, 0, len(symbols))
	for _, r := range symbols {
		if id, ok := t.symbolToID[r]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// ToSymbols 将 ID 序列还原为符号串，未知 ID 被静默丢弃
func (t *Table) ToSymbols(ids []int64) string {
	var b strings.Builder
	for _, id := range ids {
		if r, ok := t.idToSymbol[id]; ok {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TextToSequence 以默认配置将原始文本转换为模型输入 ID 序列
func TextToSequence(text string) []int64 {
	return DefaultTable().ToIDs(DefaultNormalizer().Normalize(text))
}

// SequenceToText 将 ID 序列还原为符号串
func SequenceToText(ids []int64) string {
	return DefaultTable().ToSymbols(ids)
}
