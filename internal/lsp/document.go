package lsp

import (
	"net/url"
	"path/filepath"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

const sourceExt = ".aera"

// documentName выбирает имя файла для диагностик документа.
// file:// URI превращается в абсолютный путь; у untitled: и прочих схем
// пути на диске нет, и именем служит сам URI. ok=false означает файл
// на диске с чужим расширением: такие документы не разбираются.
func documentName(uri protocol.DocumentUri) (name string, ok bool) {
	parsed, err := url.Parse(uri)
	if err != nil || uri == "" {
		return uri, uri != ""
	}
	if parsed.Scheme != "file" {
		return uri, true
	}
	path := filepath.FromSlash(parsed.Path)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path, strings.EqualFold(filepath.Ext(path), sourceExt)
}
