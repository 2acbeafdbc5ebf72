// Package lsp serves CSS class completion and hover over the Language
// Server Protocol (JSON-RPC 2.0 on stdio).
package lsp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/yacobolo/csscomplete"
	"github.com/yacobolo/csscomplete/internal/log"
)

// Options wires the completion engine into the server.
type Options struct {
	Catalog  *csscomplete.Catalog
	Selector *csscomplete.Selector
	Provider *csscomplete.CompletionProvider
	Version  string
}

// Server is the language server.
type Server struct {
	// Input/output for JSON-RPC communication
	reader *bufio.Reader
	writer io.Writer
	mu     sync.Mutex // protects writer

	docs     *DocumentManager
	catalog  *csscomplete.Catalog
	selector *csscomplete.Selector
	provider *csscomplete.CompletionProvider
	version  string

	// Outstanding server-to-client requests, keyed by id
	pending   map[string]chan clientReply
	pendingMu sync.Mutex

	initialized atomic.Bool
	shutdown    bool
	exited      bool

	ctx    context.Context
	cancel context.CancelFunc
}

type clientReply struct {
	result json.RawMessage
	err    *Error
}

// asyncReply is returned by handlers that answer the request later.
type asyncReply struct{}

// NewServer creates a new LSP server that communicates over the given reader/writer.
func NewServer(reader io.Reader, writer io.Writer, opts Options) *Server {
	if opts.Catalog == nil {
		opts.Catalog = csscomplete.DefaultCatalog()
	}
	if opts.Selector == nil {
		opts.Selector = csscomplete.NewSelector(csscomplete.Tailwind)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		reader:   bufio.NewReader(reader),
		writer:   writer,
		docs:     NewDocumentManager(),
		catalog:  opts.Catalog,
		selector: opts.Selector,
		provider: opts.Provider,
		version:  opts.Version,
		pending:  make(map[string]chan clientReply),
		ctx:      ctx,
		cancel:   cancel,
	}
	s.selector.OnChange(s.announceFramework)
	return s
}

// Run starts the LSP server main loop. It returns nil after exit or when
// the client closes the stream.
func (s *Server) Run(ctx context.Context) error {
	log.Server("LSP server starting")
	defer s.stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := s.readMessage()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Server("Connection closed")
				return nil
			}
			log.Server("Error reading message: %v", err)
			return fmt.Errorf("reading message: %w", err)
		}

		log.Server("Received: %s", string(msg))

		response, err := s.handleMessage(msg)
		if err != nil {
			log.Server("Error handling message: %v", err)
			continue
		}

		if response != nil {
			if err := s.writeMessage(response); err != nil {
				log.Server("Error writing response: %v", err)
				return fmt.Errorf("writing response: %w", err)
			}
		}

		if s.exited {
			log.Server("Server exit requested")
			return nil
		}
	}
}

func (s *Server) stop() {
	if s.provider != nil {
		s.provider.Close()
	}
	s.cancel()
}

// readMessage reads a JSON-RPC message from the input.
// Messages are formatted as HTTP-like headers followed by content:
// Content-Length: <length>\r\n
// \r\n
// <content>
func (s *Server) readMessage() ([]byte, error) {
	var contentLength int
	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		if strings.HasPrefix(line, "Content-Length:") {
			lenStr := strings.TrimSpace(strings.TrimPrefix(line, "Content-Length:"))
			contentLength, err = strconv.Atoi(lenStr)
			if err != nil {
				return nil, fmt.Errorf("invalid Content-Length: %w", err)
			}
		}
	}

	if contentLength == 0 {
		return nil, fmt.Errorf("missing Content-Length header")
	}

	content := make([]byte, contentLength)
	if _, err := io.ReadFull(s.reader, content); err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}

	return content, nil
}

// writeMessage writes a JSON-RPC message to the output.
func (s *Server) writeMessage(msg []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	header := fmt.Sprintf("Content-Length: %d\r\n\r\n", len(msg))
	if _, err := s.writer.Write([]byte(header)); err != nil {
		return err
	}
	if _, err := s.writer.Write(msg); err != nil {
		return err
	}

	log.Server("Sent: %s", string(msg))
	return nil
}

// sendNotification sends a notification (no response expected).
func (s *Server) sendNotification(method string, params any) error {
	msg := map[string]any{
		"jsonrpc": "2.0",
		"method":  method,
		"params":  params,
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return s.writeMessage(data)
}

// reply answers a request outside the read loop.
func (s *Server) reply(id any, result any) {
	data, err := json.Marshal(Response{JSONRPC: "2.0", ID: id, Result: result})
	if err != nil {
		log.Server("Error encoding reply: %v", err)
		return
	}
	if err := s.writeMessage(data); err != nil {
		log.Server("Error writing reply: %v", err)
	}
}

// request sends a server-to-client request and waits for the answer.
// It must not be called from the read loop.
func (s *Server) request(ctx context.Context, method string, params any) (json.RawMessage, error) {
	id := uuid.NewString()
	ch := make(chan clientReply, 1)

	s.pendingMu.Lock()
	s.pending[id] = ch
	s.pendingMu.Unlock()
	defer func() {
		s.pendingMu.Lock()
		delete(s.pending, id)
		s.pendingMu.Unlock()
	}()

	data, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}
	if err := s.writeMessage(data); err != nil {
		return nil, fmt.Errorf("sending %s: %w", method, err)
	}

	select {
	case r := <-ch:
		if r.err != nil {
			return nil, fmt.Errorf("%s: %s", method, r.err.Message)
		}
		return r.result, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.ctx.Done():
		return nil, errors.New("server stopped")
	}
}

// deliver routes a client response to the goroutine waiting on it.
func (s *Server) deliver(id any, result json.RawMessage, rpcErr *Error) {
	key := fmt.Sprint(id)
	s.pendingMu.Lock()
	ch, ok := s.pending[key]
	s.pendingMu.Unlock()
	if !ok {
		log.Server("Response for unknown request %s", key)
		return
	}
	select {
	case ch <- clientReply{result: result, err: rpcErr}:
	default:
		log.Server("Dropping duplicate response for request %s", key)
	}
}

// showMessage displays an informational message in the client.
func (s *Server) showMessage(text string) {
	if err := s.sendNotification("window/showMessage", ShowMessageParams{Type: MessageTypeInfo, Message: text}); err != nil {
		log.Server("Error sending showMessage: %v", err)
	}
}

// announceFramework publishes the status label and a confirmation after a
// framework switch. Switches before initialized are announced by handleInitialized.
func (s *Server) announceFramework(fw csscomplete.Framework) {
	if !s.initialized.Load() {
		return
	}
	s.sendStatus(fw)
	s.showMessage("CSS framework set to " + string(fw))
}

func (s *Server) sendStatus(fw csscomplete.Framework) {
	if err := s.sendNotification(StatusMethod, StatusParams{Text: csscomplete.StatusText(fw)}); err != nil {
		log.Server("Error sending status: %v", err)
	}
}

// NotifyConfigChanged tells the user that custom class settings changed.
func (s *Server) NotifyConfigChanged() {
	log.Config("Custom classes configuration changed")
	s.showMessage(ConfigChangedMessage)
}

// Request represents a JSON-RPC request.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id,omitempty"` // can be number or string
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response represents a JSON-RPC response.
type Response struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id"` // null when the request id could not be read
	Result  any    `json:"result"`
	Error   *Error `json:"error,omitempty"`
}

// Error represents a JSON-RPC error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// JSON-RPC error codes
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// incoming is any message the client sends: request, notification or
// a response to one of our requests.
type incoming struct {
	Request
	Result json.RawMessage `json:"result,omitempty"`
	Error  *Error          `json:"error,omitempty"`
}

// handleMessage processes a single JSON-RPC message.
func (s *Server) handleMessage(msg []byte) ([]byte, error) {
	var in incoming
	if err := json.Unmarshal(msg, &in); err != nil {
		return s.errorResponse(nil, CodeParseError, "Parse error")
	}

	if in.Method == "" {
		if in.ID == nil {
			return s.errorResponse(nil, CodeInvalidRequest, "Invalid request")
		}
		s.deliver(in.ID, in.Result, in.Error)
		return nil, nil
	}

	req := in.Request
	log.Server("Handling method: %s", req.Method)

	result, rpcErr := s.route(req)

	// Notifications don't get responses
	if req.ID == nil {
		return nil, nil
	}

	if rpcErr != nil {
		return s.errorResponse(req.ID, rpcErr.Code, rpcErr.Message)
	}
	if _, ok := result.(asyncReply); ok {
		return nil, nil
	}

	resp := Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  result,
	}
	return json.Marshal(resp)
}

// errorResponse creates an error response.
func (s *Server) errorResponse(id any, code int, message string) ([]byte, error) {
	resp := Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	}
	return json.Marshal(resp)
}
