package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/utils"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	"POST":   "created",
	"PATCH":  "updated",
	"PUT":    "updated",
	"DELETE": "deleted",
}

// RequestLogger writes one structured line per request. Writes carry an
// action verb. With errorReporting on, server errors are logged at error
// level with the handler errors attached.
func RequestLogger(logger *zap.Logger, errorReporting bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		client := utils.DescribeClient(c)
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", client.IP),
			zap.String("device", client.DeviceType),
			zap.String("browser", client.Browser),
			zap.String("os", client.OS),
		}
		if verb, ok := methodToActionVerb[c.Request.Method]; ok {
			fields = append(fields, zap.String("action", verb))
		}
		if s, ok := GetSession(c); ok {
			fields = append(fields, zap.String("session_id", s.ID))
		}
		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
			fields = append(fields, zap.String("trace_id", sc.TraceID().String()))
		}
		status := c.Writer.Status()
		if len(c.Errors) > 0 && (errorReporting || status < 500) {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= 500 && errorReporting:
			logger.Error("[http] request", fields...)
		case status >= 400:
			logger.Warn("[http] request", fields...)
		default:
			logger.Info("[http] request", fields...)
		}
	}
}
