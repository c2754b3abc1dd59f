package forge

import (
	"fmt"

	"github.com/watt-toolkit/forge/internal/pathtree"
)

// Router maps each HTTP method to its own PathTree of handlers. It is
// built once at startup via Register/RegisterAll/the per-method
// helpers, then frozen: Listen never mutates it, and Lookup is called
// concurrently, unsynchronized, from every connection goroutine.
type Router struct {
	trees map[Method]*pathtree.Tree[Handler]
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{trees: make(map[Method]*pathtree.Tree[Handler])}
}

// DuplicateRouteError is returned by Register when a pattern was
// already registered for the same method.
type DuplicateRouteError struct {
	Method  Method
	Pattern string
}

func (e *DuplicateRouteError) Error() string {
	return fmt.Sprintf("forge: duplicate route %s %s", e.Method, e.Pattern)
}

// Register sanitizes pattern, parses it into segments, and inserts it
// into method's PathTree. A parameter segment with an empty capture
// name (bare ":") is rejected. Returns *DuplicateRouteError if a
// handler is already registered at the same (method, normalized
// pattern).
func (r *Router) Register(method Method, pattern string, handler Handler) error {
	segments := pathtree.Sanitize(pattern)
	for _, seg := range segments {
		if len(seg) > 0 && seg[0] == ':' && len(seg) == 1 {
			return fmt.Errorf("forge: empty parameter capture name in pattern %q", pattern)
		}
	}

	tree, ok := r.trees[method]
	if !ok {
		tree = pathtree.New[Handler]()
		r.trees[method] = tree
	}

	if tree.Insert(segments, handler) {
		return &DuplicateRouteError{Method: method, Pattern: pattern}
	}
	return nil
}

// MustRegister is Register followed by a panic on error; the
// per-method convenience wrappers (Get, Post, ...) use this since
// spec.md §4.3 treats duplicate registration as a fatal configuration
// error at router build time.
func (r *Router) MustRegister(method Method, pattern string, handler Handler) {
	if err := r.Register(method, pattern, handler); err != nil {
		panic(err)
	}
}

// RegisterAll registers a batch of routes from a method -> path ->
// handler table, the "batch form" spec.md §4.6 names. Panics on the
// first duplicate, same as MustRegister.
func (r *Router) RegisterAll(routes map[Method]map[string]Handler) {
	for method, byPath := range routes {
		for pattern, handler := range byPath {
			r.MustRegister(method, pattern, handler)
		}
	}
}

// Get, Post, Put, Delete, Patch, Head, Options, and Trace register a
// handler for the given pattern under the corresponding method,
// per-method sugar over MustRegister (spec.md §4.6).
func (r *Router) Get(pattern string, h Handler)     { r.MustRegister(MethodGET, pattern, h) }
func (r *Router) Post(pattern string, h Handler)    { r.MustRegister(MethodPOST, pattern, h) }
func (r *Router) Put(pattern string, h Handler)     { r.MustRegister(MethodPUT, pattern, h) }
func (r *Router) Delete(pattern string, h Handler)  { r.MustRegister(MethodDELETE, pattern, h) }
func (r *Router) Patch(pattern string, h Handler)   { r.MustRegister(MethodPATCH, pattern, h) }
func (r *Router) Head(pattern string, h Handler)    { r.MustRegister(MethodHEAD, pattern, h) }
func (r *Router) Options(pattern string, h Handler) { r.MustRegister(MethodOPTIONS, pattern, h) }
func (r *Router) Trace(pattern string, h Handler)   { r.MustRegister(MethodTRACE, pattern, h) }

// Lookup sanitizes rawPath and searches method's PathTree. A method
// with no registered routes is a clean miss, not an error.
func (r *Router) Lookup(method Method, rawPath string) (Handler, []Param, bool) {
	tree, ok := r.trees[method]
	if !ok {
		return nil, nil, false
	}

	match, ok := tree.Find(pathtree.Sanitize(rawPath))
	if !ok {
		return nil, nil, false
	}

	var params []Param
	if len(match.Params) > 0 {
		params = make([]Param, len(match.Params))
		for i, p := range match.Params {
			params[i] = Param{Name: p.Name, Value: p.Value}
		}
	}
	return *match.Value, params, true
}
