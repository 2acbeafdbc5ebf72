package lsp

import (
	"context"
	"encoding/json"

	"github.com/yacobolo/csscomplete"
	"github.com/yacobolo/csscomplete/internal/log"
)

// route dispatches a request to the appropriate handler.
func (s *Server) route(req Request) (any, *Error) {
	if s.shutdown && req.Method != "exit" {
		return nil, &Error{Code: CodeInvalidRequest, Message: "server is shutting down"}
	}

	switch req.Method {
	// Lifecycle
	case "initialize":
		return s.handleInitialize(req.Params)
	case "initialized":
		return s.handleInitialized()
	case "shutdown":
		return s.handleShutdown()
	case "exit":
		s.handleExit()
		return nil, nil

	// Document synchronization
	case "textDocument/didOpen":
		return s.handleDidOpen(req.Params)
	case "textDocument/didChange":
		return s.handleDidChange(req.Params)
	case "textDocument/didClose":
		return s.handleDidClose(req.Params)
	case "textDocument/didSave":
		return nil, nil

	// Language features
	case "textDocument/completion":
		return s.handleCompletion(req.ID, req.Params)
	case "textDocument/hover":
		return s.handleHover(req.Params)

	// Workspace
	case "workspace/executeCommand":
		return s.handleExecuteCommand(req.Params)
	case "workspace/didChangeConfiguration":
		if affectsCustomClasses(req.Params) {
			s.NotifyConfigChanged()
		}
		return nil, nil

	case "$/cancelRequest", "$/setTrace":
		return nil, nil

	default:
		log.Server("Unknown method: %s", req.Method)
		return nil, &Error{Code: CodeMethodNotFound, Message: "Method not found: " + req.Method}
	}
}

// handleInitialize handles the initialize request.
func (s *Server) handleInitialize(params json.RawMessage) (any, *Error) {
	var p InitializeParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, &Error{Code: CodeInvalidParams, Message: err.Error()}
		}
	}

	log.Server("Initialize with root: %s", p.RootURI)

	if len(p.InitializationOptions) > 0 {
		var opts InitializationOptions
		if err := json.Unmarshal(p.InitializationOptions, &opts); err != nil {
			log.Server("Ignoring malformed initializationOptions: %v", err)
		} else if opts.Framework != "" {
			fw, err := csscomplete.ParseFramework(opts.Framework)
			if err != nil {
				log.Server("Ignoring initializationOptions.framework: %v", err)
			} else {
				s.selector.Set(fw)
			}
		}
	}

	result := InitializeResult{
		Capabilities: ServerCapabilities{
			TextDocumentSync: &TextDocumentSyncOptions{
				OpenClose: true,
				Change:    TextDocumentSyncKindFull,
			},
			CompletionProvider: &CompletionOptions{
				TriggerCharacters: []string{`"`, " "},
			},
			HoverProvider: true,
			ExecuteCommandProvider: &ExecuteCommandOptions{
				Commands: []string{SetFrameworkCommand},
			},
		},
		ServerInfo: &ServerInfo{Name: "csscomplete", Version: s.version},
	}

	return result, nil
}

// handleInitialized handles the initialized notification.
func (s *Server) handleInitialized() (any, *Error) {
	s.initialized.Store(true)
	log.Server("Server initialized")
	s.sendStatus(s.selector.Active())
	return nil, nil
}

// handleShutdown handles the shutdown request.
func (s *Server) handleShutdown() (any, *Error) {
	log.Server("Shutdown requested")
	s.shutdown = true
	if s.provider != nil {
		s.provider.Close()
	}
	return nil, nil
}

// handleExit handles the exit notification.
func (s *Server) handleExit() {
	log.Server("Exit requested")
	s.exited = true
}

func (s *Server) handleDidOpen(params json.RawMessage) (any, *Error) {
	var p DidOpenParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, &Error{Code: CodeInvalidParams, Message: err.Error()}
	}

	log.Server("Document opened: %s (%s)", p.TextDocument.URI, p.TextDocument.LanguageID)
	s.docs.Open(p.TextDocument.URI, p.TextDocument.LanguageID, p.TextDocument.Text, p.TextDocument.Version)
	return nil, nil
}

func (s *Server) handleDidChange(params json.RawMessage) (any, *Error) {
	var p DidChangeParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, &Error{Code: CodeInvalidParams, Message: err.Error()}
	}
	if len(p.ContentChanges) == 0 {
		return nil, nil
	}

	// Full sync: the last change holds the whole document
	text := p.ContentChanges[len(p.ContentChanges)-1].Text
	if s.docs.Update(p.TextDocument.URI, text, p.TextDocument.Version) == nil {
		log.Server("Change for unopened document: %s", p.TextDocument.URI)
	}
	return nil, nil
}

func (s *Server) handleDidClose(params json.RawMessage) (any, *Error) {
	var p DidCloseParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, &Error{Code: CodeInvalidParams, Message: err.Error()}
	}

	log.Server("Document closed: %s", p.TextDocument.URI)
	s.docs.Close(p.TextDocument.URI)
	return nil, nil
}

// handleCompletion answers asynchronously once the debounce settles.
func (s *Server) handleCompletion(id any, params json.RawMessage) (any, *Error) {
	var p TextDocumentPositionParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, &Error{Code: CodeInvalidParams, Message: err.Error()}
	}

	log.Server("Completion request at %s:%d:%d", p.TextDocument.URI, p.Position.Line, p.Position.Character)

	doc := s.docs.Get(p.TextDocument.URI)
	if doc == nil || s.provider == nil || !csscomplete.IsSupportedLanguage(doc.LanguageID) {
		return nil, nil
	}
	if id == nil {
		// Sent as a notification; there is nobody to answer.
		return nil, nil
	}

	prefix := doc.LinePrefix(p.Position)
	s.provider.Provide(s.ctx, doc.LanguageID, prefix, func(items []csscomplete.Suggestion) {
		if items == nil {
			s.reply(id, nil)
			return
		}
		s.reply(id, toCompletionItems(items))
	})
	return asyncReply{}, nil
}

func toCompletionItems(items []csscomplete.Suggestion) []CompletionItem {
	out := make([]CompletionItem, len(items))
	for i, it := range items {
		out[i] = CompletionItem{
			Label:      it.Label,
			Kind:       CompletionItemKindValue,
			Detail:     it.Detail,
			InsertText: it.InsertText,
			Documentation: &MarkupContent{
				Kind:  "plaintext",
				Value: it.Documentation,
			},
		}
	}
	return out
}

func (s *Server) handleHover(params json.RawMessage) (any, *Error) {
	var p TextDocumentPositionParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, &Error{Code: CodeInvalidParams, Message: err.Error()}
	}

	log.Server("Hover request at %s:%d:%d", p.TextDocument.URI, p.Position.Line, p.Position.Character)

	doc := s.docs.Get(p.TextDocument.URI)
	if doc == nil || doc.LanguageID != "html" {
		return nil, nil
	}

	line := doc.Line(p.Position.Line)
	word, desc, ok := s.catalog.HoverAt(line, utf16ToByteOffset(line, p.Position.Character))
	if !ok {
		return nil, nil
	}

	log.Server("Hover for %s", word)
	return Hover{Contents: MarkupContent{Kind: "plaintext", Value: desc}}, nil
}

func (s *Server) handleExecuteCommand(params json.RawMessage) (any, *Error) {
	var p ExecuteCommandParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, &Error{Code: CodeInvalidParams, Message: err.Error()}
	}
	if p.Command != SetFrameworkCommand {
		return nil, &Error{Code: CodeInvalidParams, Message: "unknown command: " + p.Command}
	}

	if len(p.Arguments) > 0 {
		var name string
		if err := json.Unmarshal(p.Arguments[0], &name); err != nil {
			return nil, &Error{Code: CodeInvalidParams, Message: "framework argument must be a string"}
		}
		fw, err := csscomplete.ParseFramework(name)
		if err != nil {
			return nil, &Error{Code: CodeInvalidParams, Message: err.Error()}
		}
		s.selector.Set(fw)
		return nil, nil
	}

	// The answer arrives through the read loop, so wait for it elsewhere.
	go s.promptFramework(s.ctx)
	return nil, nil
}

func (s *Server) promptFramework(ctx context.Context) {
	fw, ok, err := s.selector.Choose(ctx, &clientPrompter{server: s})
	switch {
	case err != nil:
		log.Server("Framework selection failed: %v", err)
	case !ok:
		log.Server("Framework selection dismissed, keeping %s", fw)
	default:
		log.Server("Framework switched to %s", fw)
	}
}

// clientPrompter asks the user through window/showMessageRequest.
type clientPrompter struct {
	server *Server
}

// Pick implements csscomplete.Prompter.
func (p *clientPrompter) Pick(ctx context.Context, placeholder string, choices []string) (string, bool, error) {
	actions := make([]MessageActionItem, len(choices))
	for i, c := range choices {
		actions[i] = MessageActionItem{Title: c}
	}

	raw, err := p.server.request(ctx, "window/showMessageRequest", ShowMessageRequestParams{
		Type:    MessageTypeInfo,
		Message: placeholder,
		Actions: actions,
	})
	if err != nil {
		return "", false, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return "", false, nil
	}

	var picked MessageActionItem
	if err := json.Unmarshal(raw, &picked); err != nil {
		return "", false, err
	}
	return picked.Title, picked.Title != "", nil
}

// affectsCustomClasses reports whether a didChangeConfiguration payload
// carries the custom class list, either nested
// ({"cssUtilityAutocomplete": {"customClasses": [...]}}) or as a dotted key.
func affectsCustomClasses(params json.RawMessage) bool {
	var p DidChangeConfigurationParams
	if len(params) == 0 || json.Unmarshal(params, &p) != nil {
		return false
	}

	var settings map[string]json.RawMessage
	if json.Unmarshal(p.Settings, &settings) != nil {
		return false
	}
	if _, ok := settings[SettingsSection+"."+CustomClassesKey]; ok {
		return true
	}

	var section map[string]json.RawMessage
	if json.Unmarshal(settings[SettingsSection], &section) != nil {
		return false
	}
	_, ok := section[CustomClassesKey]
	return ok
}
