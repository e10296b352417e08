package driver

import (
	"aera/internal/diag"
	"aera/internal/lexer"
	"aera/internal/source"
	"aera/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads one file and lexes it to the end.
func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewLimitedBag(opts.MaxDiagnostics)
	done := opts.track("lex")
	tokens := lexer.Tokenize(file, bag)
	done(file.Path)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
