// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// readyTimeout は依存先1件あたりの疎通確認の上限時間です。
const readyTimeout = 2 * time.Second

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// HTTPメソッドに応じて適切にレスポンスし、キャッシュを防止します。
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// Check は依存先1件の疎通確認です。
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// Ready は依存先（Redis・カタログDBなど）の疎通を確認する /readyz ハンドラーを返します。
// 1件でも失敗すれば503です。未設定の依存先はchecksに含めません。
func Ready(checks ...Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")

		status, code := "ok", http.StatusOK
		results := make(map[string]string, len(checks))
		for _, ch := range checks {
			ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
			err := ch.Ping(ctx)
			cancel()
			if err != nil {
				results[ch.Name] = err.Error()
				status, code = "unavailable", http.StatusServiceUnavailable
				continue
			}
			results[ch.Name] = "ok"
		}
		c.JSON(code, gin.H{"status": status, "checks": results})
	}
}
