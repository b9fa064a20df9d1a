package app

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strings"

	"gonhanh/internal/common"
)

const maxLineSize = 1024 * 1024

type TranslationServer struct {
	listener   net.Listener
	socket     string
	translator *Translator
	logger     *slog.Logger
	errCh      chan error
}

// StartTranslationServer listens on the unix socket at path and answers
// every line it receives with its translation. An empty path disables the
// server and returns nil.
func StartTranslationServer(path string, translator *Translator, logger *slog.Logger) (*TranslationServer, error) {
	if path == "" {
		return nil, nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := common.EnsureSocketDir(path); err != nil {
		return nil, fmt.Errorf("create socket dir: %w", err)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", path, err)
	}
	if err := os.Chmod(path, 0o660); err != nil && !errors.Is(err, os.ErrNotExist) {
		listener.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("chmod socket: %w", err)
	}
	srv := &TranslationServer{
		listener:   listener,
		socket:     path,
		translator: translator,
		logger:     logger.With("component", "server", "socket", path),
		errCh:      make(chan error, 1),
	}
	srv.logger.Info("translation server listening", "method", translator.Options().Method.String())
	go func() {
		srv.errCh <- srv.serve()
		close(srv.errCh)
	}()
	return srv, nil
}

func (s *TranslationServer) Close() {
	if s == nil {
		return
	}
	s.listener.Close()
	for range s.errCh {
	}
	_ = os.Remove(s.socket)
	s.logger.Info("translation server stopped")
}

func (s *TranslationServer) Err() <-chan error {
	if s == nil {
		return nil
	}
	return s.errCh
}

func (s *TranslationServer) Addr() string {
	if s == nil {
		return ""
	}
	return s.socket
}

func (s *TranslationServer) serve() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				continue
			}
			return err
		}
		go func(c net.Conn) {
			defer c.Close()
			if err := s.handle(c); err != nil {
				s.logger.Warn("translation error", "err", err)
			}
		}(conn)
	}
}

func (s *TranslationServer) handle(conn net.Conn) error {
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	writer := bufio.NewWriter(conn)
	for scanner.Scan() {
		response := s.translator.Translate(scanner.Text())
		if _, err := writer.WriteString(response); err != nil {
			return err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
		if err := writer.Flush(); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, net.ErrClosed) {
			return nil
		}
		return err
	}
	return nil
}

// Client talks to a running translation server over one connection.
type Client struct {
	conn   net.Conn
	reader *bufio.Reader
}

func DialTranslationServer(path string) (*Client, error) {
	conn, err := net.Dial("unix", path)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", path, err)
	}
	return &Client{conn: conn, reader: bufio.NewReader(conn)}, nil
}

func (c *Client) Translate(line string) (string, error) {
	if _, err := fmt.Fprintln(c.conn, line); err != nil {
		return "", err
	}
	response, err := c.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(response, "\n"), nil
}

func (c *Client) Close() error { return c.conn.Close() }
