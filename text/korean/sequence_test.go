package korean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToIDsRoundTrip(t *testing.T) {
	table := DefaultTable()
	symbols := Decompose("안녕하세요, 세계!")

	ids := table.ToIDs(symbols)
	assert.NotEmpty(t, ids)
	assert.Equal(t, symbols, table.ToSymbols(ids))

	// 首次转换后到达不动点
	again := table.ToIDs(table.ToSymbols(ids))
	assert.Equal(t, ids, again)
}

func TestToIDsDropsUnknown(t *testing.T) {
	table := DefaultTable()

	// 未拆解的音节与词表外字符被静默丢弃
	assert.Empty(t, table.ToIDs("가★"))
	assert.Equal(t, "ab ", table.ToSymbols(table.ToIDs("a★b ")))

	// 未知 ID 同样被静默丢弃
	assert.Equal(t, "", table.ToSymbols([]int64{-1, int64(table.Size()), 1 << 40}))
}

func TestTextToSequence(t *testing.T) {
	ids := TextToSequence("안녕하세요 123")
	assert.NotEmpty(t, ids)

	size := int64(DefaultTable().Size())
	for _, id := range ids {
		assert.GreaterOrEqual(t, id, int64(0))
		assert.Less(t, id, size)
	}
}

func TestNewTableDeDup(t *testing.T) {
	table := NewTable([]rune{'a', 'b', 'a', 'c', 'b'})
	assert.Equal(t, 3, table.Size())
	// 重复符号保留首次出现的位置
	assert.Equal(t, []int64{0, 1, 2}, table.ToIDs("abc"))
}

func TestDefaultTableStable(t *testing.T) {
	table := DefaultTable()
	assert.Same(t, table, DefaultTable())

	// ID 按位置分配: pad 恒为 0
	assert.Equal(t, []int64{0}, table.ToIDs("_"))
	assert.Equal(t, len(DefaultSymbols()), table.Size())
}
