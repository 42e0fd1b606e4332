package shared

import (
	"github.com/senghong-shop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// SessionID 读取会话中间件写入的访客会话ID。
func SessionID(c *gin.Context) (string, bool) {
	id := c.GetString("session_id")
	if id == "" {
		RespondError(c, response.CodeBadRequest, "error.session_unavailable", nil)
		return "", false
	}
	return id, true
}

// RequestID 读取请求ID
func RequestID(c *gin.Context) string {
	return c.GetString("request_id")
}
