package middleware

import "net/http"

type requestRecorder interface {
	HTTPRequest(method string, status int)
}

// Metrics counts every served request by method and status.
func Metrics(rec requestRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := wrap(w)
			next.ServeHTTP(sw, r)
			rec.HTTPRequest(r.Method, sw.status)
		})
	}
}
