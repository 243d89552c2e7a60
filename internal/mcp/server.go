package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"github.com/ynsight/ynsight/internal/common"
	"github.com/ynsight/ynsight/internal/tools"
)

// ProtocolVersion is the MCP protocol revision this server implements.
const ProtocolVersion = "2024-11-05"

// Server runs the MCP request loop over a byte stream. Requests are handled
// one at a time; each is independent and a failing request never terminates
// the loop.
type Server struct {
	dispatcher *tools.Dispatcher
	name       string
	version    string
}

// NewServer creates a Server over the given dispatcher.
func NewServer(dispatcher *tools.Dispatcher, name, version string) *Server {
	return &Server{dispatcher: dispatcher, name: name, version: version}
}

// Serve reads framed requests from r and writes framed responses to w until
// the stream ends or the context is canceled.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	reader := bufio.NewReader(r)
	writer := bufio.NewWriter(w)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		body, err := ReadMessage(reader)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		var req Request
		if err := json.Unmarshal(body, &req); err != nil {
			resp := NewErrorResponse(nil, CodeParseError, "parse error: "+err.Error(), nil)
			if writeErr := s.write(writer, resp); writeErr != nil {
				return writeErr
			}
			continue
		}

		resp := s.handle(ctx, &req)
		if resp == nil || req.Notification() {
			continue
		}
		if err := s.write(writer, resp); err != nil {
			return err
		}
	}
}

func (s *Server) write(w *bufio.Writer, resp *Response) error {
	body, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return WriteMessage(w, body)
}

func (s *Server) handle(ctx context.Context, req *Request) *Response {
	switch req.Method {
	case "initialize":
		return NewResponse(req.ID, map[string]any{
			"protocolVersion": ProtocolVersion,
			"capabilities": map[string]any{
				"tools": map[string]any{},
			},
			"serverInfo": map[string]any{
				"name":    s.name,
				"version": s.version,
			},
		})

	case "notifications/initialized", "initialized":
		return nil // notification, no reply

	case "ping":
		return NewResponse(req.ID, map[string]any{})

	case "tools/list":
		return NewResponse(req.ID, map[string]any{
			"tools": tools.Definitions(),
		})

	case "tools/call":
		return s.handleToolCall(ctx, req)

	default:
		slog.Debug("unknown method", "method", req.Method)
		return NewErrorResponse(req.ID, CodeMethodNotFound, "method not found: "+req.Method, nil)
	}
}

func (s *Server) handleToolCall(ctx context.Context, req *Request) *Response {
	var params struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}
	if len(req.Params) == 0 {
		return NewErrorResponse(req.ID, CodeInvalidParams, "missing params for tools/call", nil)
	}
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return NewErrorResponse(req.ID, CodeInvalidParams, "invalid params: "+err.Error(), nil)
	}
	if params.Name == "" {
		return NewErrorResponse(req.ID, CodeInvalidParams, "missing tool name", nil)
	}

	result, err := s.dispatcher.Dispatch(ctx, params.Name, params.Arguments)
	if err != nil {
		return NewErrorResponse(req.ID, CodeToolFailure, err.Error(), map[string]any{
			"kind": string(common.KindOf(err)),
		})
	}

	rendered, err := json.Marshal(result)
	if err != nil {
		return NewErrorResponse(req.ID, CodeToolFailure, "rendering result: "+err.Error(), nil)
	}

	return NewResponse(req.ID, map[string]any{
		"content": []map[string]any{
			{"type": "text", "text": string(rendered)},
		},
	})
}
