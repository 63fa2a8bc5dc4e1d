package lexer

import (
	"fmt"

	"fortio.org/safecast"
)

// Cursor представляет собой позицию в буфере исходника
type Cursor struct {
	Src []byte
	Off uint32
	// Limit is the exclusive upper bound for Off, len(Src) by default.
	Limit uint32
}

// NewCursor creates a cursor over src. It panics if src is not addressable
// with uint32 offsets.
func NewCursor(src []byte) Cursor {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("len source overflow: %w", err))
	}
	return Cursor{Src: src, Limit: limit}
}

// EOF проверяет, достигнут ли конец буфера
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Src[c.Off]
}

// Rest возвращает непрочитанный остаток буфера
func (c *Cursor) Rest() []byte {
	if c.EOF() {
		return nil
	}
	return c.Src[c.Off:c.Limit]
}

// SkipBlank пропускает пробелы, табы, \v и \f, но не '\n'
func (c *Cursor) SkipBlank() {
	for !c.EOF() && isBlank(c.Src[c.Off]) {
		c.Off++
	}
}

// Advance сдвигает курсор на n байт, не дальше Limit
func (c *Cursor) Advance(n uint32) {
	if n > c.Limit-c.Off {
		c.Off = c.Limit
		return
	}
	c.Off += n
}
