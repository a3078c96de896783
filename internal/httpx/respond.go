// Package httpx carries the response envelope and request logging shared by
// every handler package.
package httpx

import (
	"log"
	"net/http"

	"github.com/go-chi/render"

	"music-catalog/internal/errs"
)

type envelope struct {
	HTTPStatusCode int    `json:"-"`
	Status         string `json:"status"`
	Message        string `json:"message,omitempty"`
	Data           any    `json:"data,omitempty"`
}

func (e *envelope) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

// Success writes {"status":"success","data":...}.
func Success(w http.ResponseWriter, r *http.Request, code int, data any) {
	_ = render.Render(w, r, &envelope{
		HTTPStatusCode: code,
		Status:         "success",
		Data:           data,
	})
}

// SuccessMessage writes {"status":"success","message":...}.
func SuccessMessage(w http.ResponseWriter, r *http.Request, code int, msg string) {
	_ = render.Render(w, r, &envelope{
		HTTPStatusCode: code,
		Status:         "success",
		Message:        msg,
	})
}

// Fail writes a client error envelope with an explicit status.
func Fail(w http.ResponseWriter, r *http.Request, code int, msg string) {
	_ = render.Render(w, r, &envelope{
		HTTPStatusCode: code,
		Status:         "fail",
		Message:        msg,
	})
}

// Error maps err through the errs taxonomy. Client errors become "fail"
// envelopes with the error message; everything else is a masked 500.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	code := errs.HTTPStatus(err)
	if code == http.StatusInternalServerError {
		log.Printf("http: %s %s: %v", r.Method, r.URL.Path, err)
		_ = render.Render(w, r, &envelope{
			HTTPStatusCode: code,
			Status:         "error",
			Message:        "internal server error",
		})
		return
	}
	Fail(w, r, code, err.Error())
}
