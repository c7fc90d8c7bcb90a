package logger

import (
	"io"
	log "log/slog"
	"os"
)

// LogWriter gin 访问日志与 slog 共用的输出
var LogWriter io.Writer = os.Stdout

// InitLogger 初始化全局 slog：JSON 输出，并从 ctx 中补全 trace_id
func InitLogger(service string) {
	h := log.NewJSONHandler(LogWriter, &log.HandlerOptions{Level: log.LevelInfo}).
		WithAttrs([]log.Attr{log.String("service", service)})

	log.SetDefault(log.New(&ContextHandler{h}))
}
