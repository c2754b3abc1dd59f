package forge

import (
	"context"
	"net"
	"strconv"
	"syscall"

	"golang.org/x/sys/unix"
)

// Options configures a Listener: host/port to bind and the worker
// knob named in spec.md §4.8. Threads is retained for parity with the
// source design; this module's single-reactor-multi-threaded topology
// (goroutine per connection under Go's own scheduler) does not need a
// fixed worker count to pre-size anything, so it is informational only
// — see DESIGN.md's Open Question resolution.
//
// ReusePort binds with SO_REUSEPORT (via reusePortControl) instead of
// a plain bind, letting an embedder run several Listener instances on
// the same (Host, Port) across OS threads/processes — the
// thread-per-core topology spec.md §4.8 permits as an alternative to
// the default single-reactor model.
type Options struct {
	Host      string
	Port      uint16
	Threads   int
	ReusePort bool

	Logger *Logger
	Stats  *Stats
}

// Listener binds a TCP socket and runs the accept loop spec.md §4.8
// describes: for each accepted connection, set TCP_NODELAY and spawn
// a goroutine running the connection pipeline against a shared Router.
type Listener struct {
	router *Router
	opts   Options
}

// NewListener builds a Listener bound to router and configured by opts.
// The Router must be fully registered before Listen is called — the
// Router is never mutated afterwards (spec.md §4.3 "built once at
// startup and is read-only during serving").
func NewListener(router *Router, opts Options) *Listener {
	return &Listener{router: router, opts: opts}
}

// Listen binds (host, port) and runs the accept loop. It returns only
// if the bind fails; once bound it never returns. Accept failures are
// logged and do not stop the loop, per spec.md §4.8 step 3.
func (l *Listener) Listen() error {
	addr := net.JoinHostPort(l.opts.Host, strconv.Itoa(int(l.opts.Port)))

	var ln net.Listener
	var err error
	if l.opts.ReusePort {
		lc := net.ListenConfig{Control: reusePortControl}
		ln, err = lc.Listen(context.Background(), "tcp", addr)
	} else {
		ln, err = net.Listen("tcp", addr)
	}
	if err != nil {
		return err
	}
	defer ln.Close()

	if l.opts.Logger != nil {
		l.opts.Logger.Info("listening", "addr", addr)
	}

	for {
		conn, err := ln.Accept()
		if err != nil {
			if l.opts.Logger != nil {
				l.opts.Logger.Warn("accept failed", "error", err.Error())
			}
			if l.opts.Stats != nil {
				l.opts.Stats.ConnectionErrors.Inc()
			}
			continue
		}

		if tcpConn, ok := conn.(*net.TCPConn); ok {
			if err := tcpConn.SetNoDelay(true); err != nil && l.opts.Logger != nil {
				l.opts.Logger.Warn("failed to set TCP_NODELAY", "error", err.Error())
			}
		}

		go serve(conn, l.router, l.opts.Logger, l.opts.Stats)
	}
}

// reusePortControl is the net.ListenConfig Control function Listen
// installs when Options.ReusePort is set, enabling SO_REUSEPORT-style
// multi-listener binding on Linux.
func reusePortControl(_, _ string, c syscall.RawConn) error {
	return c.Control(func(fd uintptr) {
		_ = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
	})
}
