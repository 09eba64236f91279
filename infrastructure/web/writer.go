package web

import (
	"context"
	"net/http"
)

type writerKey int

const responseWriterKey writerKey = 1

func setWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, responseWriterKey, w)
}

// GetWriter returns the underlying ResponseWriter for handlers that need to
// set headers before the Encoder is written (CORS, caching).
func GetWriter(ctx context.Context) http.ResponseWriter {
	w, ok := ctx.Value(responseWriterKey).(http.ResponseWriter)
	if !ok {
		return nil
	}
	return w
}
