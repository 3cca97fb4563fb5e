package response // import "bookhaven/internal/http/response"

import (
	"fmt"
	"net/http"
)

// Builder assembles an HTTP response with the common security headers.
type Builder struct {
	w          http.ResponseWriter
	r          *http.Request
	statusCode int
	headers    map[string]string
	body       []byte
}

func New(w http.ResponseWriter, r *http.Request) *Builder {
	return &Builder{
		w:          w,
		r:          r,
		statusCode: http.StatusOK,
		headers:    make(map[string]string),
	}
}

func (b *Builder) WithStatus(statusCode int) *Builder {
	b.statusCode = statusCode
	return b
}

func (b *Builder) WithHeader(key, value string) *Builder {
	b.headers[key] = value
	return b
}

func (b *Builder) WithBody(body []byte) *Builder {
	b.body = body
	return b
}

func (b *Builder) Write() {
	b.w.Header().Set("X-Content-Type-Options", "nosniff")
	b.w.Header().Set("X-Frame-Options", "DENY")
	for key, value := range b.headers {
		b.w.Header().Set(key, value)
	}
	if b.body != nil {
		b.w.Header().Set("Content-Length", fmt.Sprintf("%d", len(b.body)))
	}
	b.w.WriteHeader(b.statusCode)
	if b.body != nil {
		b.w.Write(b.body)
	}
}
