package device

import "net/http"

// Middleware classifies the User-Agent header of every request and stores the
// resulting Info in the request context. Extra options apply on top of the
// classifier defaults; the signal source is always the request itself.
func Middleware(c *Classifier, opts ...Option) func(http.Handler) http.Handler {
	if c == nil {
		c = NewClassifier()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			o := c.options(opts).with(WithUA(FromRequest(r)))
			ctx := WithContext(r.Context(), c.snapshot(o))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
