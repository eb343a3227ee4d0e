package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Logger ghi log truy cập có cấu trúc cho từng request.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", latency),
			zap.String("request_id", c.GetString("request_id")),
		}
		if userID, exists := c.Get("user_id"); exists {
			fields = append(fields, zap.String("user_id", userID.(string)))
		}

		switch {
		case status >= 500:
			logger.Error("Server error", fields...)
		case status >= 400:
			logger.Warn("Client error", fields...)
		default:
			logger.Info("Request", fields...)
		}
	}
}

// CORS mở cho frontend nội bộ của đơn vị.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestID gắn mã truy vết cho request, nhận lại mã client gửi lên
// nếu có.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Request.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code int, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"code": code, "message": message})
	c.Abort()
}

// JWTAuth kiểm tra access token và đưa danh tính vào context.
// Refresh token không dùng được ở đây.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
		if tokenString == "" {
			abortUnauthorized(c, 40100, "Yêu cầu đăng nhập")
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, 40102, "Token không hợp lệ hoặc đã hết hạn")
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, 40103, "Token không hợp lệ")
			return
		}
		if claims["type"] == "refresh" {
			abortUnauthorized(c, 40103, "Không dùng refresh token để truy cập")
			return
		}
		userID, _ := claims["sub"].(string)
		if userID == "" {
			abortUnauthorized(c, 40103, "Token không hợp lệ")
			return
		}

		username, _ := claims["username"].(string)
		fullName, _ := claims["full_name"].(string)
		role, _ := claims["role"].(string)
		c.Set("user_id", userID)
		c.Set("username", username)
		c.Set("full_name", fullName)
		c.Set("role", role)
		c.Next()
	}
}

// AdminOnly chặn các thao tác quản trị (quản lý tài khoản, xoá lệnh
// tạm giam, xuất báo cáo) với người không phải admin.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != "admin" {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    40300,
				"message": "Chỉ quản trị viên được phép thực hiện thao tác này",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
