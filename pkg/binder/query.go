package binder

import "net/http"

// Query creates a query parameter binder function.
//
// Fields are matched by the `query` struct tag:
//   - `query:"name"` binds to query parameter "name"
//   - `query:"-"` skips the field
//   - untagged fields bind to the lowercased field name
//
// Supported field types are string, signed and unsigned integers, bool,
// pointers to those for optional values, and string slices.
//
// Example:
//
//	type CallbackRequest struct {
//		Code  string `query:"code"`
//		State string `query:"state"`
//	}
//
//	r.HandleFunc("/callback", handler.Wrap(h,
//		handler.WithBinders[handler.Context, CallbackRequest](binder.Query()),
//	))
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
