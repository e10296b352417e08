package lsp

import (
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	// регистрирует бэкенд commonlog
	_ "github.com/tliron/commonlog/simple"

	"aera/internal/version"
)

const lsName = "aera"

// Options configures the language server.
type Options struct {
	// MaxDiagnostics ограничивает число диагностик на документ; 0: без лимита.
	MaxDiagnostics int
	// Verbosity передаётся в commonlog.Configure; 0 выключает лог.
	Verbosity int
	// LogFile пишет лог в файл вместо stderr.
	LogFile string
}

type document struct {
	version protocol.Integer
	text    string
}

// Server is a diagnostics-only language server: every open, change and
// save re-lexes and re-parses the document and publishes the result.
type Server struct {
	opts    Options
	handler protocol.Handler
	log     commonlog.Logger

	mu   sync.Mutex
	docs map[protocol.DocumentUri]*document
}

// New builds a server and wires its protocol handlers.
func New(opts Options) *Server {
	if opts.Verbosity > 0 {
		var path *string
		if opts.LogFile != "" {
			path = &opts.LogFile
		}
		commonlog.Configure(opts.Verbosity, path)
	}
	s := &Server{
		opts: opts,
		log:  commonlog.GetLogger("aera.lsp"),
		docs: make(map[protocol.DocumentUri]*document),
	}
	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.didOpen,
		TextDocumentDidChange: s.didChange,
		TextDocumentDidClose:  s.didClose,
		TextDocumentDidSave:   s.didSave,
	}
	return s
}

// RunStdio serves the protocol over stdin/stdout until the client exits.
func (s *Server) RunStdio() error {
	srv := server.NewServer(&s.handler, lsName, false)
	return srv.RunStdio()
}

func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	if params.ClientInfo != nil {
		s.log.Infof("initialize from %s", params.ClientInfo.Name)
	}
	capabilities := s.handler.CreateServerCapabilities()
	syncKind := protocol.TextDocumentSyncKindIncremental
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    &syncKind,
		Save:      &protocol.SaveOptions{IncludeText: boolPtr(true)},
	}
	ver := version.Version
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ver,
		},
	}, nil
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	s.log.Info("client initialized")
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	s.mu.Lock()
	s.docs = make(map[protocol.DocumentUri]*document)
	s.mu.Unlock()
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) didOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.mu.Lock()
	s.docs[uri] = &document{version: params.TextDocument.Version, text: params.TextDocument.Text}
	s.mu.Unlock()
	s.log.Debugf("open %s", uri)
	s.publish(ctx, uri, params.TextDocument.Text)
	return nil
}

func (s *Server) didChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.mu.Lock()
	doc, ok := s.docs[uri]
	if !ok {
		// изменение до didOpen: начинаем с пустого текста
		doc = &document{}
		s.docs[uri] = doc
	}
	doc.text = applyChanges(doc.text, params.ContentChanges)
	doc.version = params.TextDocument.Version
	text := doc.text
	s.mu.Unlock()
	s.publish(ctx, uri, text)
	return nil
}

func (s *Server) didClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.mu.Lock()
	delete(s.docs, uri)
	s.mu.Unlock()
	s.log.Debugf("close %s", uri)
	notify(ctx, uri, []protocol.Diagnostic{})
	return nil
}

func (s *Server) didSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.mu.Lock()
	doc, ok := s.docs[uri]
	if params.Text != nil {
		if !ok {
			doc = &document{}
			s.docs[uri] = doc
			ok = true
		}
		doc.text = *params.Text
	}
	var text string
	if ok {
		text = doc.text
	}
	s.mu.Unlock()
	if !ok {
		return nil
	}
	s.publish(ctx, uri, text)
	return nil
}

// text returns the current buffer of an open document.
func (s *Server) text(uri protocol.DocumentUri) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[uri]
	if !ok {
		return "", false
	}
	return doc.text, true
}

func (s *Server) publish(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	diags := s.analyze(uri, text)
	s.log.Debugf("publish %d diagnostics for %s", len(diags), uri)
	notify(ctx, uri, diags)
}

func notify(ctx *glsp.Context, uri protocol.DocumentUri, diags []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(string(protocol.ServerTextDocumentPublishDiagnostics), protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diags,
	})
}

func boolPtr(v bool) *bool { return &v }
