package logger

import (
	"Commons/internal/api/config"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

type accessLog struct {
	Time        string `json:"time"`
	Level       string `json:"level"`
	Msg         string `json:"msg"`
	TraceID     string `json:"trace_id"`
	LogToken    string `json:"log_token,omitempty"`
	TargetIndex string `json:"target_index,omitempty"`
	Method      string `json:"method"`
	Path        string `json:"path"`
	ClientIP    string `json:"client_ip"`
	Status      int    `json:"status"`
	Latency     string `json:"latency"`
	Error       string `json:"error,omitempty"`
}

// SetupGin 访问日志写入 LogWriter，连上 Logstash 时直接上报
func SetupGin(r *gin.Engine, cfg config.LogstashConfig) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Output:    LogWriter,
		SkipPaths: []string{"/api/ping"},
		Formatter: func(p gin.LogFormatterParams) string {
			return formatAccessLog(p, cfg)
		},
	}))

	r.Use(gin.Recovery())
}

func formatAccessLog(p gin.LogFormatterParams, cfg config.LogstashConfig) string {
	entry := accessLog{
		Time:        p.TimeStamp.Format(time.RFC3339),
		Level:       "INFO",
		Msg:         "GIN_ACCESS",
		TraceID:     accessTraceID(p),
		LogToken:    cfg.Token,
		TargetIndex: cfg.Index,
		Method:      p.Method,
		Path:        p.Path,
		ClientIP:    p.ClientIP,
		Status:      p.StatusCode,
		Latency:     p.Latency.String(),
		Error:       p.ErrorMessage,
	}
	if p.StatusCode >= 500 {
		entry.Level = "ERROR"
	}

	b, err := json.Marshal(entry)
	if err != nil {
		return ""
	}
	return string(b) + "\n"
}

func accessTraceID(p gin.LogFormatterParams) string {
	if id, ok := p.Keys[TraceIDKey].(string); ok && id != "" {
		return id
	}
	if p.Request != nil {
		if id, ok := p.Request.Context().Value(TraceIDKey).(string); ok {
			return id
		}
	}
	return ""
}
