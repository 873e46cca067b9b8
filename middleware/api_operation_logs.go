package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/BerniceZTT/cdp_end/models"
	"github.com/BerniceZTT/cdp_end/repository"
	"github.com/BerniceZTT/cdp_end/utils"

	"github.com/gin-gonic/gin"
)

// 需要记录的HTTP方法
var loggedMethods = map[string]bool{
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
	http.MethodPatch:  true,
}

// 不需要记录的路径
var excludedPaths = map[string]bool{
	"/api/health":     true,
	"/api/db-status":  true,
	"/api/auth/login": true,
}

// OperationLoggerMiddleware 操作日志记录中间件，记录所有写操作
func OperationLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !shouldLogOperation(c) {
			c.Next()
			return
		}

		startTime := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		// 创建自定义响应写入器以捕获响应体
		blw := &bodyLogWriter{
			body:           bytes.NewBufferString(""),
			ResponseWriter: c.Writer,
		}
		c.Writer = blw

		// 读取并重置请求体
		var requestBodyBytes []byte
		if c.Request.Body != nil {
			var err error
			requestBodyBytes, err = io.ReadAll(c.Request.Body)
			if err != nil {
				utils.Logger.Error().Err(err).Msg("读取请求体失败")
			} else {
				// 重置请求体，以便后续处理
				c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBodyBytes))
			}
		}

		c.Next()

		// 提取操作人（认证中间件在前时可用）
		var username string
		if user, err := utils.GetUser(c); err == nil {
			username = user.Username
		}

		logEntry := models.OperationLog{
			Method:       method,
			Path:         path,
			Username:     username,
			RequestBody:  string(requestBodyBytes),
			StatusCode:   c.Writer.Status(),
			DurationMs:   time.Since(startTime).Milliseconds(),
			OperatedAt:   startTime.Format(time.RFC3339),
			ResponseSize: blw.body.Len(),
		}

		// 写入失败不影响请求处理
		if err := repository.InsertOperationLog(logEntry); err != nil {
			utils.Logger.Error().Err(err).Msg("写入操作日志失败")
		}
	}
}

// shouldLogOperation 判断是否需要记录此操作
func shouldLogOperation(c *gin.Context) bool {
	if !loggedMethods[c.Request.Method] {
		return false
	}
	return !excludedPaths[c.Request.URL.Path]
}
