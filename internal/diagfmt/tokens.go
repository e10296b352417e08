package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"aera/internal/token"
)

const (
	kindColumn   = 14
	lexemeColumn = 32
)

var (
	tokenKindColor    = color.New(color.FgCyan)
	tokenIllegalColor = color.New(color.FgRed, color.Bold)
	tokenPosColor     = color.New(color.Faint)
)

// TokenOutput is the JSON shape of one token.
type TokenOutput struct {
	Kind   string `json:"kind"`
	Text   string `json:"text,omitempty"`
	Line   uint32 `json:"line"`
	Col    uint32 `json:"col"`
	Value  any    `json:"value,omitempty"`
	Suffix string `json:"suffix,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате:
//
//	  1: KwLet          "let"                            at 1:1
//
// Колонки выравниваются по ширине в ячейках терминала, длинные лексемы обрезаются.
func FormatTokensPretty(w io.Writer, tokens []token.Token, colorize bool) error {
	kindC, illegalC, posC := tokenKindColor, tokenIllegalColor, tokenPosColor
	if !colorize {
		kindC, illegalC, posC = plain(), plain(), plain()
	}
	for i, tok := range tokens {
		kind := runewidth.FillRight(tok.Kind.String(), kindColumn)
		if tok.Kind == token.Illegal {
			kind = illegalC.Sprint(kind)
		} else {
			kind = kindC.Sprint(kind)
		}
		text := ""
		if tok.Lexeme != "" {
			text = strconv.Quote(tok.Lexeme)
		}
		text = runewidth.Truncate(text, lexemeColumn, "…")
		text = runewidth.FillRight(text, lexemeColumn)

		if _, err := fmt.Fprintf(w, "%4d: %s %s %s\n", i+1, kind, text,
			posC.Sprintf("at %d:%d", tok.Loc.Line, tok.Loc.Col)); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

func plain() *color.Color {
	c := color.New()
	c.DisableColor()
	return c
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind:   tok.Kind.String(),
			Text:   tok.Lexeme,
			Line:   tok.Loc.Line,
			Col:    tok.Loc.Col,
			Value:  tok.Value,
			Suffix: tok.Suffix,
		}
		// байт символьного литерала выводим строкой, а не числом
		if b, ok := tok.Value.(byte); ok {
			out.Value = string(rune(b))
		}
		output = append(output, out)
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
