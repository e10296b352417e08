package driver

import (
	"aera/internal/ast"
	"aera/internal/diag"
	"aera/internal/lexer"
	"aera/internal/parser"
	"aera/internal/source"
	"aera/internal/token"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Program *ast.Program
	Bag     *diag.Bag
}

// Parse loads one file, lexes and parses it.
func Parse(path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	res := parseFile(fs.Get(fileID), opts)
	res.FileSet = fs
	return res, nil
}

// ParseText parses an in-memory buffer (stdin, editor contents) registered as a virtual file.
func ParseText(name string, content []byte, opts Options) *ParseResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	res := parseFile(fs.Get(id), opts)
	res.FileSet = fs
	return res
}

// parseFile: общий путь: лексер и парсер пишут в один Bag, лексические ошибки идут первыми.
func parseFile(file *source.File, opts Options) *ParseResult {
	bag := diag.NewLimitedBag(opts.MaxDiagnostics)

	doneLex := opts.track("lex")
	tokens := lexer.Tokenize(file, bag)
	doneLex(file.Path)

	doneParse := opts.track("parse")
	prog := parser.ParseFile(file, tokens, parser.Options{
		Reporter:  bag,
		MaxErrors: opts.maxErrors(),
	})
	doneParse(file.Path)

	return &ParseResult{
		File:    file,
		Tokens:  tokens,
		Program: prog,
		Bag:     bag,
	}
}
