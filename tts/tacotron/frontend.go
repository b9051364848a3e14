package tacotron

import "fmt"

// textToIDs 将原始文本经韩语前端转换为模型输入 ID 序列
//
// 标准化与 ID 映射均为有损操作: 无法识别的字符与词表外符号
// 被静默丢弃，不会中断合成
func (e *Engine) textToIDs(text string) []int64 {
	normalized := e.normalizer.Normalize(text)
	if normalized == "" {
		fmt.Printf("[WARN] 文本标准化结果为空: %q\n", text)
		return nil
	}
	return e.table.ToIDs(normalized)
}
