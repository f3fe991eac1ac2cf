package logger

import (
	log "log/slog"
	"net/http"
	"time"
)

// MinIOTransport 记录对象存储请求，不读取请求/响应体
type MinIOTransport struct {
	Transport http.RoundTripper
}

func NewMinIOTransport(next http.RoundTripper) *MinIOTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &MinIOTransport{Transport: next}
}

func (t *MinIOTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.Transport.RoundTrip(req)
	elapsed := time.Since(start)

	fields := []any{
		log.String("method", req.Method),
		log.String("path", req.URL.Path),
		log.Duration("latency", elapsed),
	}

	if err != nil {
		log.ErrorContext(req.Context(), "MinIO Error", append(fields, log.Any("err", err))...)
		return nil, err
	}

	fields = append(fields, log.Int("status", resp.StatusCode))
	if elapsed > 500*time.Millisecond {
		log.WarnContext(req.Context(), "MinIO Slow", fields...)
	} else {
		log.InfoContext(req.Context(), "MinIO Request", fields...)
	}

	return resp, nil
}
