package forge

import (
	"context"
	"errors"
	"io"
	"net"
	"syscall"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/valyala/bytebufferpool"
)

// readBufferSize is the fixed size of the single read spec.md §9
// documents as a deliberate simplification: the pipeline reads once
// and treats what it got as the entire request head.
const readBufferSize = 4096

var readBufPool bytebufferpool.Pool

// pipeline is the per-connection state spec.md §4.7 describes: an
// owned stream, a shared immutable Router reference, and a read
// buffer. Grounded on shockwave/pkg/shockwave/http11/connection.go's
// Serve() loop and original_source's forge-server/src/connection.rs.
type pipeline struct {
	conn   net.Conn
	router *Router
	log    *Logger
	stats  *Stats
	connID string
}

// serve runs the read -> decode -> parse -> route -> invoke -> write
// loop until a transport error or clean close terminates it. Logical
// errors (bad UTF-8, parse failures, missing routes, handler errors)
// produce a response and keep the connection alive. Read-phase errors
// split three ways per spec.md §4.7 step 1: connection-closed/reset
// and a zero-byte read terminate silently; any other read failure
// emits a 500 before terminating. Write failures always terminate
// silently, per the error taxonomy in §7.
func serve(conn net.Conn, router *Router, log *Logger, stats *Stats) {
	p := &pipeline{
		conn:   conn,
		router: router,
		log:    log,
		stats:  stats,
		connID: uuid.NewString(),
	}
	defer conn.Close()

	if stats != nil {
		stats.TotalConnections.Inc()
		stats.ActiveConnections.Inc()
		defer stats.ActiveConnections.Dec()
	}
	if log != nil {
		log.Info("connection accepted", "conn_id", p.connID, "remote_addr", conn.RemoteAddr().String())
	}

	for {
		buf := readBufPool.Get()
		n, err := readOnce(conn, buf)
		if err != nil {
			readBufPool.Put(buf)
			if isSilentReadError(err) {
				if log != nil {
					log.Debug("connection closed", "conn_id", p.connID, "reason", err.Error())
				}
				return
			}
			if stats != nil {
				stats.ConnectionErrors.Inc()
			}
			if log != nil {
				log.Warn("read failed", "conn_id", p.connID, "error", err.Error())
			}
			p.writeResponse(NewResponse(StatusInternalServerError).Text("failed to read data from stream"))
			return
		}
		if n == 0 {
			readBufPool.Put(buf)
			if log != nil {
				log.Debug("connection closed", "conn_id", p.connID, "reason", "eof")
			}
			return
		}

		raw := append([]byte(nil), buf.B[:n]...)
		readBufPool.Put(buf)

		resp := p.handleOne(raw)
		if !p.writeResponse(resp) {
			return
		}
	}
}

// readOnce performs exactly one read into buf's backing array, sized
// to readBufferSize, matching spec.md §4.7 step 1's "read once".
func readOnce(conn net.Conn, buf *bytebufferpool.ByteBuffer) (int, error) {
	if cap(buf.B) < readBufferSize {
		buf.B = make([]byte, readBufferSize)
	} else {
		buf.B = buf.B[:readBufferSize]
	}
	return conn.Read(buf.B)
}

// isSilentReadError reports whether a read-phase error is a transport
// connection-closed/reset condition, which spec.md §4.7 step 1 says
// terminates the pipeline without a response. Any other read error is
// not silent: the caller emits a 500 before terminating, matching
// original_source's read_request_bytes, which maps ErrorKind::ConnectionReset
// and ErrorKind::BrokenPipe to a silent close and everything else to
// an InternalServerError.
func isSilentReadError(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE)
}

// writeResponse serializes and writes resp to the connection, logging
// the outcome. It returns false if the write failed, telling the
// caller to terminate the pipeline (spec.md §4.7 step 6).
func (p *pipeline) writeResponse(resp Response) bool {
	wire, serializeErr := resp.Serialize()
	if serializeErr != nil {
		wire, _ = NewResponse(StatusInternalServerError).Text("response head too large").Serialize()
	}
	if _, err := p.conn.Write(wire); err != nil {
		if p.stats != nil {
			p.stats.ConnectionErrors.Inc()
		}
		if p.log != nil {
			p.log.Debug("connection closed", "conn_id", p.connID, "reason", "write failed")
		}
		return false
	}
	if p.log != nil {
		p.log.Debug("response sent", "conn_id", p.connID, "status", resp.Status.Code())
	}
	return true
}

// handleOne runs steps 2-5 of spec.md §4.7 (decode, parse, route,
// invoke) over one read's worth of bytes and always returns a
// Response — logical failures are already translated per the error
// taxonomy in spec.md §7.
func (p *pipeline) handleOne(raw []byte) Response {
	if !utf8.Valid(raw) {
		if p.log != nil {
			p.log.Warn("invalid utf-8 in request", "conn_id", p.connID)
		}
		return NewResponse(StatusBadRequest).Text("request bytes are not valid UTF-8")
	}

	view, err := ParseRequestView(raw)
	if err != nil {
		if p.log != nil {
			p.log.Warn("malformed request", "conn_id", p.connID, "error", err.Error())
		}
		return NewResponse(StatusBadRequest).Text(err.Error())
	}
	view.ConnID = p.connID

	handler, params, ok := p.router.Lookup(view.Method, view.Path)
	if !ok {
		if p.log != nil {
			p.log.Info("no route", "conn_id", p.connID, "method", view.Method.String(), "path", view.Path)
		}
		return NewResponse(StatusNotFound).Text("The requested resource could not be found")
	}
	view.Params = params

	if p.log != nil {
		p.log.Debug("route selected", "conn_id", p.connID, "method", view.Method.String(), "path", view.Path)
	}

	_, span := startRequestSpan(context.Background(), &view)
	resp := resolve(handler, &view)
	endRequestSpan(span, resp.Status)

	if p.stats != nil {
		p.stats.TotalRequests.Inc()
		if resp.Status.IsError() && resp.Status >= StatusInternalServerError {
			p.stats.RequestErrors.Inc()
		}
	}
	return resp
}
