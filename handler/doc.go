// Package handler provides typed HTTP handlers.
//
// A HandlerFunc receives a Context and a request value already populated by
// the configured binders, and returns a Response that renders itself. Wrap
// turns it into an http.HandlerFunc usable with any router:
//
//	type CallbackRequest struct {
//		Code  string `query:"code"`
//		State string `query:"state"`
//	}
//
//	h := func(ctx handler.Context, req CallbackRequest) handler.Response {
//		if req.Code == "" {
//			return handler.JSONError(handler.NewHTTPError(http.StatusBadRequest, "Missing authorization code"))
//		}
//		return handler.JSON(map[string]string{"code": req.Code})
//	}
//
//	r.HandleFunc("/callback", handler.Wrap(h,
//		handler.WithBinders[handler.Context, CallbackRequest](binder.Query()),
//		handler.WithErrorHandler[handler.Context, CallbackRequest](handler.NewErrorHandler(log)),
//	))
//
// # Responses
//
//   - JSON encodes any value (status 200 unless WithJSONStatus is given).
//   - RawJSON writes an encoded document verbatim.
//   - JSONError renders an ErrorDetail {"error", "details", "redirect"}.
//   - Redirect and RedirectWithCode issue HTTP redirects.
//
// # Errors
//
// Binding and rendering failures go to the ErrorHandler. HTTPError values
// carry their own status code and message; other errors become a generic
// 500 so internal details are not exposed.
package handler
