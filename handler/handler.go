package handler

import "net/http"

// HandlerFunc provides type-safe HTTP request handling with custom context support.
// C must implement the Context interface, R can be any request type.
//
// Example:
//
//	h := handler.HandlerFunc[handler.Context, CallbackRequest](
//		func(ctx handler.Context, req CallbackRequest) handler.Response {
//			return handler.JSON(map[string]string{"code": req.Code})
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter.
// Implementations should set headers, status code, and write body.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses HTTP requests into typed values.
type Bind func(r *http.Request, v any) error

// ErrorHandler handles errors from binding or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// WrapOption configures the Wrap function.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	binders        []Bind
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
}

// WithBinders sets request binders that will be applied in order.
//
// Example:
//
//	r.HandleFunc("/callback", handler.Wrap(h,
//		handler.WithBinders[handler.Context, CallbackRequest](binder.Query()),
//	))
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.binders = append(c.binders, binders...)
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets a custom context factory.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// defaultErrorHandler renders err as a JSON error without logging.
func defaultErrorHandler[C Context](ctx C, err error) {
	_ = JSONError(err).Render(ctx.ResponseWriter(), ctx.Request())
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
// Usage with standard context:
//
//	r.HandleFunc("/login", handler.Wrap(h))
//
// With options:
//
//	r.HandleFunc("/callback", handler.Wrap(h,
//		handler.WithBinders[handler.Context, CallbackRequest](binder.Query()),
//		handler.WithErrorHandler[handler.Context, CallbackRequest](errorHandler),
//	))
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler: defaultErrorHandler[C],
		contextFactory: func(w http.ResponseWriter, r *http.Request) C {
			if c, ok := any(NewContext(w, r)).(C); ok {
				return c
			}
			panic("cannot use default context factory with custom context type - provide WithContextFactory")
		},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				cfg.errorHandler(ctx, err)
				return
			}
		}

		response := h(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
