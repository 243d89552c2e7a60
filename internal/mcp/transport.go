package mcp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// The MCP stdio transport frames each JSON-RPC message with HTTP-style
// headers, of which Content-Length is the one that matters:
//
//	Content-Length: 42\r\n
//	\r\n
//	{"jsonrpc":"2.0", ...}

// ReadMessage reads one framed message from the reader. io.EOF on a clean
// stream end is returned unwrapped so the serve loop can exit quietly.
func ReadMessage(r *bufio.Reader) ([]byte, error) {
	contentLength := -1

	for {
		line, err := r.ReadString('\n')
		if err != nil {
			if err == io.EOF && line == "" && contentLength < 0 {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("reading frame header: %w", err)
		}

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break // end of headers
		}

		name, value, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("malformed frame header %q", line)
		}
		if strings.EqualFold(strings.TrimSpace(name), "Content-Length") {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid Content-Length %q", strings.TrimSpace(value))
			}
			contentLength = n
		}
	}

	if contentLength < 0 {
		return nil, fmt.Errorf("frame missing Content-Length header")
	}

	body := make([]byte, contentLength)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("reading frame body: %w", err)
	}
	return body, nil
}

// WriteMessage writes one framed message to the writer.
func WriteMessage(w io.Writer, body []byte) error {
	if _, err := fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", len(body)); err != nil {
		return fmt.Errorf("writing frame header: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("writing frame body: %w", err)
	}
	if f, ok := w.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flushing frame: %w", err)
		}
	}
	return nil
}
