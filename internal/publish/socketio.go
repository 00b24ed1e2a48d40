package publish

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/vk/packer/internal/ctxlog"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

const (
	DefaultEvent     = "package"
	DefaultNamespace = "/"

	defaultPath    = "/socket.io/"
	connectTimeout = 15 * time.Second
)

// SocketIOOptions configures a socket.io publisher.
type SocketIOOptions struct {
	URL                string
	Namespace          string
	Event              string
	InsecureSkipVerify bool
}

// SocketIO emits every result as an event on a socket.io connection.
type SocketIO struct {
	client *socket.Socket
	event  string
}

// DialSocketIO connects to the server and waits for the handshake.
func DialSocketIO(ctx context.Context, o SocketIOOptions) (*SocketIO, error) {
	logger := ctxlog.FromContext(ctx).With("publisher", "socketio", "url", o.URL)

	parsedURL, err := url.Parse(o.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	switch parsedURL.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return nil, fmt.Errorf("unsupported publish URL scheme %q", parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return nil, fmt.Errorf("publish URL %q has no host", o.URL)
	}
	if o.Namespace == "" {
		o.Namespace = DefaultNamespace
	}
	if o.Event == "" {
		o.Event = DefaultEvent
	}

	opts := socket.DefaultOptions()
	path := parsedURL.Path
	if path == "" || path == "/" {
		path = defaultPath
	}
	opts.SetPath(path)
	if o.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(o.Namespace, opts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Connected to publish target", "sid", io.Id())
		select {
		case connectChan <- nil:
		default:
		}
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := fmt.Errorf("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		select {
		case connectChan <- err:
		default:
		}
	})

	logger.Debug("Initiating connection...")
	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return &SocketIO{client: io, event: o.Event}, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(connectTimeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", connectTimeout)
	}
}

// Publish implements Publisher.
func (s *SocketIO) Publish(ctx context.Context, r Result) error {
	if !s.client.Connected() {
		return fmt.Errorf("socket.io client is not connected")
	}
	ctxlog.FromContext(ctx).Debug("Publishing result", "event", s.event, "index", r.Index)
	s.client.Emit(s.event, map[string]any{
		"index":   r.Index,
		"package": r.Package,
	})
	return nil
}

// Close implements Publisher.
func (s *SocketIO) Close() error {
	s.client.Disconnect()
	return nil
}
