package httpx

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs one line per request with status, latency and size.
func RequestLogger(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		t := time.Now()

		defer func() {
			log.Printf(
				"http | status %d | method %s | uri %s | latency %s | bytes %d",
				ww.Status(),
				r.Method,
				r.RequestURI,
				time.Since(t),
				ww.BytesWritten(),
			)
		}()

		next.ServeHTTP(ww, r)
	}

	return http.HandlerFunc(fn)
}
