// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request struct already populated by
// the configured binders and returns a Response that renders itself:
//
//	func issue(ctx handler.Context, req IssueRequest) handler.Response {
//		res, err := svc.Issue(ctx, req)
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.JSON(res)
//	}
//
//	r.Post("/api/generate-cert", handler.Wrap(issue,
//		handler.WithBinder[handler.Context, IssueRequest](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, IssueRequest](errHandler),
//	))
//
// Binding and rendering failures, as well as responses built with Error, are
// passed to the ErrorHandler. NewErrorHandler renders them as
// {"error": "..."} JSON with a status chosen by an ErrorClassifier and logs
// them at WARN for client errors and ERROR otherwise.
package handler
