package forge

import (
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/valyala/bytebufferpool"
)

// Header is a single ordered response header, preserving caller
// insertion order on the wire (unlike the request-side Headers map).
type Header struct {
	Name  string
	Value string
}

// Response is the builder and wire model for an HTTP/1.1 response:
// a status, an ordered header list, and an optional body.
type Response struct {
	Status  Status
	Headers []Header
	Body    []byte
}

// NewResponse starts a builder at the given status with no headers or body.
func NewResponse(status Status) Response {
	return Response{Status: status}
}

// Header appends a header to the response, preserving insertion order.
func (r Response) Header(name, value string) Response {
	r.Headers = append(r.Headers, Header{Name: name, Value: value})
	return r
}

// Text sets Content-Type: text/plain and the given body.
func (r Response) Text(body string) Response {
	r.Headers = append(r.Headers, Header{Name: "Content-Type", Value: "text/plain"})
	r.Body = []byte(body)
	return r
}

// JSON marshals v and sets Content-Type: application/json. A
// marshaling failure produces a 500 response with a diagnostic body
// instead of propagating the encoding error, per spec.md §4.5.
func (r Response) JSON(v any) Response {
	b, err := json.Marshal(v)
	if err != nil {
		return NewResponse(StatusInternalServerError).Text("failed to serialize response body: " + err.Error())
	}
	r.Headers = append(r.Headers, Header{Name: "Content-Type", Value: "application/json"})
	r.Body = b
	return r
}

// headScratchPool supplies the scratch buffers responses are
// serialized into before being flushed to the connection, grounded on
// shockwave's buffer_pool.go pattern but backed by bytebufferpool.
var headScratchPool bytebufferpool.Pool

// maxHeadSize is the caller-fixed scratch buffer size spec.md §4.5
// requires (≥4 KiB); exceeding it fails the serialization with 500.
const maxHeadSize = 8192

// errHeadTooLarge is returned by Serialize when the serialized head
// would exceed maxHeadSize.
var errHeadTooLarge = &parseError{kind: "response head exceeds scratch buffer"}

// Serialize renders the response into the exact wire format required
// by spec.md §4.5:
//
//	HTTP/1.1 <code> <reason>\r\n
//	<name>: <value>\r\n            (insertion order)
//	Content-Length: <n>\r\n        (always emitted)
//	\r\n
//	<body>
//
// Content-Length is computed from len(Body) and always emitted, even
// when Body is nil (value 0). If the head would overflow the fixed
// scratch buffer, Serialize returns errHeadTooLarge and the caller
// falls back to a plain 500 (spec.md §7 "Head buffer overflow").
func (r Response) Serialize() ([]byte, error) {
	buf := headScratchPool.Get()
	defer headScratchPool.Put(buf)

	buf.WriteString(r.Status.statusLine())
	for _, h := range r.Headers {
		buf.WriteString(h.Name)
		buf.WriteString(": ")
		buf.WriteString(h.Value)
		buf.WriteString("\r\n")
	}
	buf.WriteString("Content-Length: ")
	buf.WriteString(strconv.Itoa(len(r.Body)))
	buf.WriteString("\r\n\r\n")

	if buf.Len() > maxHeadSize {
		return nil, errHeadTooLarge
	}

	out := make([]byte, 0, buf.Len()+len(r.Body))
	out = append(out, buf.Bytes()...)
	out = append(out, r.Body...)
	return out, nil
}
