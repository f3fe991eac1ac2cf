package middleware

import (
	"bytes"
	log "log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
)

// 帖子列表响应较大，只截取前 16KB
const maxAuditBody = 16384

var auditSkipPaths = map[string]struct{}{
	"/api/ping": {},
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *responseBodyWriter) Write(b []byte) (int, error) {
	if remain := maxAuditBody - r.body.Len(); remain > 0 {
		r.body.Write(b[:min(len(b), remain)])
	}
	return r.ResponseWriter.Write(b)
}

func (r *responseBodyWriter) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// AuditMiddleware 记录请求参数与响应，接口均为只读，不记录请求体
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, skip := auditSkipPaths[c.Request.URL.Path]; skip {
			c.Next()
			return
		}
		ctx := c.Request.Context()

		query, err := url.QueryUnescape(c.Request.URL.RawQuery)
		if err != nil {
			query = c.Request.URL.RawQuery
		}
		log.InfoContext(ctx, "Recv Request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("route", c.FullPath()),
			log.String("query", query),
			log.String("client_ip", c.ClientIP()),
		)

		w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w
		start := time.Now()

		c.Next()

		log.Log(ctx, responseLevel(c.Writer.Status()), "Send Response",
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(start)),
			log.String("res_body", w.body.String()),
		)
	}
}

func responseLevel(status int) log.Level {
	if status >= http.StatusInternalServerError {
		return log.LevelError
	}
	return log.LevelInfo
}
