package shared

import (
	"github.com/senghong-shop/internal/http/response"
	"github.com/senghong-shop/internal/i18n"
	"github.com/senghong-shop/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 与 session_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	kv := make([]interface{}, 0, 4)
	if id := c.GetString("request_id"); id != "" {
		kv = append(kv, "request_id", id)
	}
	if id := c.GetString("session_id"); id != "" {
		kv = append(kv, "session_id", id)
	}
	return logger.SW(kv...)
}

// RespondError 返回国际化错误响应；服务端错误记录 error，其余记录 warn。
func RespondError(c *gin.Context, code int, key string, err error) {
	msg := i18n.T(i18n.ResolveLocale(c), key)
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		log := RequestLog(c)
		if code >= response.CodeInternal {
			log.Errorw("handler_error", "code", appErr.Code, "message", appErr.Message, "error", err)
		} else {
			log.Warnw("handler_rejected", "code", appErr.Code, "message", appErr.Message, "error", err)
		}
	}
	response.Error(c, appErr.Code, appErr.Message)
}
