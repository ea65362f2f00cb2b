package main

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed static
var staticFiles embed.FS

// webServer creates the http server serving the embedded page, the browser
// session endpoint, the irpc endpoint and optionally /metrics. Websockets
// opened on /irpc are handed to the returned listener.
func (s *server) webServer(ctx context.Context) (*WebsocketListener, *http.Server) {
	l := NewWSListener(context.Background(), s.cfg.Server.Listen+"/irpc")

	srv := &http.Server{
		Addr:              s.cfg.Server.Listen,
		Handler:           s.handler(ctx, l),
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.log.Info("listening", "url", "http://localhost"+s.cfg.Server.Listen)
	return l, srv
}

// handler routes the http surface. Browser sessions live until ctx is done.
func (s *server) handler(ctx context.Context, l *WebsocketListener) http.Handler {
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err) // embedded tree is fixed at build time
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.sessionHandler(ctx))
	mux.HandleFunc("/irpc", websocketHandler(l, s.cfg.Server.OriginPatterns, s.log))
	if s.cfg.Server.Metrics {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", http.FileServer(http.FS(static)))
	return mux
}

// sessionHandler upgrades the request and runs a browser session on it
// until either side closes.
func (s *server) sessionHandler(ctx context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: s.cfg.Server.OriginPatterns,
		})
		if err != nil {
			s.log.Warn("websocket accept", "remote", r.RemoteAddr, "err", err)
			return
		}
		s.serveSession(ctx, c, r.RemoteAddr)
	}
}

// websocketHandler upgrades irpc clients. Once the handshake succeeds the
// connection is queued on l to be accepted, and the handler blocks until the
// connection is done with.
func websocketHandler(l *WebsocketListener, origins []string, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: origins,
		})
		if err != nil {
			log.Warn("websocket accept", "remote", r.RemoteAddr, "err", err)
			return
		}

		nc := websocket.NetConn(r.Context(), c, websocket.MessageBinary)
		ac := &acceptedConn{Conn: nc, done: make(chan struct{})}
		select {
		case l.ch <- ac:
			<-ac.done
		case <-l.ctx.Done():
			c.Close(websocket.StatusGoingAway, "server shutting down")
		}
	}
}

// acceptedConn reports back to its handler once it is closed.
type acceptedConn struct {
	net.Conn
	done chan struct{}
	once sync.Once
}

func (c *acceptedConn) Close() error {
	err := c.Conn.Close()
	c.once.Do(func() { close(c.done) })
	return err
}

// WebsocketListener is a net.Listener over websockets upgraded by an http
// handler, so an irpc.Server can serve them next to plain TCP.
type WebsocketListener struct {
	ch     chan *acceptedConn
	ctx    context.Context
	cancel context.CancelFunc
	addr   wsAddr
}

var _ net.Listener = (*WebsocketListener)(nil)

func NewWSListener(ctx context.Context, addr string) *WebsocketListener {
	ctx, cancel := context.WithCancel(ctx)
	return &WebsocketListener{
		ch:     make(chan *acceptedConn),
		ctx:    ctx,
		cancel: cancel,
		addr:   wsAddr{addr: addr},
	}
}

// Accept blocks until a websocket is upgraded or the listener is closed.
func (l *WebsocketListener) Accept() (net.Conn, error) {
	select {
	case c := <-l.ch:
		return c, nil
	case <-l.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (l *WebsocketListener) Addr() net.Addr {
	return l.addr
}

// Close stops accepting. Websockets already accepted stay open.
func (l *WebsocketListener) Close() error {
	l.cancel()
	return nil
}

// wsAddr is the listener's own address; the network is reported as "ws".
type wsAddr struct {
	addr string
}

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return a.addr
}
