// Package binder decodes HTTP request data into typed request structs.
//
// Binders have the signature func(*http.Request, any) error so they plug
// straight into handler.WithBinders. Only query-string binding is provided:
//
//	type CallbackRequest struct {
//	    Code  string `query:"code"`
//	    State string `query:"state"`
//	}
//
//	handler.Wrap(h, handler.WithBinders[handler.Context, CallbackRequest](binder.Query()))
//
// A missing parameter leaves the field at its zero value; the handler decides
// whether that is an error. Malformed values (for example a non-numeric value
// bound to an int) return an error wrapping ErrFailedToParseQuery.
package binder
