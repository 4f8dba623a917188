package main

import (
	"net/http"
	"strings"
)

type handler struct {
	method    string
	reqPath   string
	handlFunc func(http.ResponseWriter, *http.Request)
}

func (cfg *appConfig) routes() http.Handler {
	var handlers = []handler{
		{
			method:    "GET",
			reqPath:   "/{$}",
			handlFunc: cfg.boardHandler,
		},
		{
			method:    "GET",
			reqPath:   "/board",
			handlFunc: cfg.boardFragmentHandler,
		},
		{
			method:    "GET",
			reqPath:   "/squares/{name}",
			handlFunc: cfg.squareHandler,
		},
		{
			method:    "GET",
			reqPath:   "/assets/pieces/{file}",
			handlFunc: cfg.glyphHandler,
		},
		{
			method:    "GET",
			reqPath:   "/board.png",
			handlFunc: cfg.snapshotHandler,
		},
		{
			method:    "GET",
			reqPath:   "/fen",
			handlFunc: cfg.fenHandler,
		},
		{
			method:    "",
			reqPath:   "/",
			handlFunc: cfg.notFoundHandler,
		},
	}

	mux := http.NewServeMux()
	for _, h := range handlers {
		reqLine := strings.TrimSpace(strings.Join([]string{h.method, h.reqPath}, " "))

		mux.HandleFunc(reqLine, h.handlFunc)
	}

	return cfg.withRequestLog(mux)
}
