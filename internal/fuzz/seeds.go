package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса
)

// builtinSeeds покрывают все подграмматики лексера и основные конструкции парсера.
var builtinSeeds = []string{
	"",
	"@entry pub fn main() -> int32 {\n    return 0;\n}\n",
	"let x: int32 =\nlet y = 5\n",
	"class C { x: int32 fn f() { } }",
	"trait Show { fn show() -> string; }\nwith Show for C { fn show() -> string { return \"c\"; } }",
	"for i in 1.0..10.0 { do_something() }",
	"let v: map!<string, arr!<opt!<int32>>>[2][];",
	"fn f() { a = b if c else d; match x { _ => y?, } }",
	"fn g() { while true { if x { break; } else if y { continue; } } loop { } }",
	"<# unterminated",
	"<# block #> # line comment\n",
	"'ab' \"\\q\" 0b102 1e+ 3.x 0xFFu8 1_000i64 2.5f32",
	"let s = \"tab\\t\\\"quoted\\\"\\n\"; let c = '\\n';",
	"x <<= 1; y >>= 2; z **= 3; a != b && !c || d",
	"$ # ` \x00 \xff",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.aera файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".aera" {
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
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
