// Package forge is a minimal HTTP/1.1 server framework: a segment-trie
// path router, a zero-copy request parser, a response builder, and a
// goroutine-per-connection pipeline, wired together by a Listener.
//
// A typical program builds a Router, registers handlers on it, and
// hands it to a Listener:
//
//	router := forge.NewRouter()
//	router.Get("/ping", func(r *forge.RequestView) (forge.Response, error) {
//		return forge.NewResponse(forge.StatusOK).Text("pong!"), nil
//	})
//
//	cfg, _ := forge.LoadConfig()
//	log := forge.NewLogger(cfg.LogLevel, "")
//	ln := forge.NewListener(router, forge.Options{
//		Host: cfg.Host, Port: cfg.Port, Logger: log,
//	})
//	ln.Listen()
package forge
