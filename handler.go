package forge

import "errors"

// Handler is the uniform call signature every registered endpoint
// satisfies. spec.md §4.6 asks for a capability accepting both
// synchronous values and futures-of-values; Go has no first-class
// future comparable to the source's, and every request is already
// served on its own connection goroutine (spec.md §5's "Parallelism"),
// so a Handler that needs to block or yield simply does so in place —
// that goroutine is the suspendable computation. The (Response, error)
// return pair is this module's IntoResponse capability: a nil error
// means the Response is used as-is, a non-nil error is converted per
// HTTPError below.
type Handler func(*RequestView) (Response, error)

// HTTPError is a handler-reported error that carries its own response
// status and message, mirroring original_source's forge-http
// HttpError. Any other error type is treated as an internal failure.
type HTTPError struct {
	Status  Status
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError constructs an HTTPError.
func NewHTTPError(status Status, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// errorToResponse implements the IntoResponse capability for handler
// errors: an *HTTPError becomes a response at its own status and
// message body; any other error becomes 500 with the error text as
// body (spec.md §7's "Handler-reported HttpError" / implicit fallback
// for unclassified handler failures).
func errorToResponse(err error) Response {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return NewResponse(httpErr.Status).Text(httpErr.Message)
	}
	return NewResponse(StatusInternalServerError).Text(err.Error())
}

// resolve applies a Handler's result through the IntoResponse
// capability: on error, the error wins over any partially constructed
// Response (spec.md §9 "Handler storage" — the handler's reported
// failure is authoritative).
func resolve(h Handler, req *RequestView) Response {
	resp, err := h(req)
	if err != nil {
		return errorToResponse(err)
	}
	return resp
}
