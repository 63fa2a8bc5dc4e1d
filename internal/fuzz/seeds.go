package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addEdgeSeeds(f)
}

// addTestdataSeeds добавляет фикстуры лексера (*.c, *.h).
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "lexer", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".c", ".h":
		default:
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

// addEdgeSeeds: граничные случаи классификатора и обоих проходов.
func addEdgeSeeds(f *testing.F) {
	for _, s := range []string{
		"",
		"#",
		"#  define X 1\n",
		"#unknown\n",
		"/*/",
		"/* open",
		"// a \\\n b\n",
		"\"abc",
		"'\\''",
		"L\"w\" u8\"x\" U'c'",
		"1e-10 0x1Fp+3 .5f 10ull",
		"a...b->c>>=d",
		"x @ y",
		"\x00\xff",
		"\\\n",
	} {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
