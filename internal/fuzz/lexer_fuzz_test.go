package fuzztests

import (
	"testing"

	"aera/internal/diag"
	"aera/internal/lexer"
	"aera/internal/source"
	"aera/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.aera", input)
		file := fs.Get(fileID)

		bag := diag.NewLimitedBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: bag})
		// каждый вызов Next потребляет хотя бы байт, так что токенов не больше len+1
		limit := len(file.Source()) + 2
		for n := 0; ; n++ {
			if n > limit {
				t.Fatalf("lexer did not reach EOF after %d tokens", n)
			}
			tok := lx.Next()
			if tok.Kind == token.EOF {
				break
			}
		}
	})
}
