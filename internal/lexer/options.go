package lexer

import (
	"ctruct/internal/diag"
)

type Options struct {
	Reporter diag.Reporter // nil: диагностики не сообщаются
	NoMerge  bool          // пропустить второй проход (склейку префиксов)
}
