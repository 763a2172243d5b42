// Package http はGemini API呼び出しに使う外部向けHTTPクライアントを構築します。
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient は接続・TLS・リクエスト全体にタイムアウトを設定したHTTPクライアントを作成します。
//
// 注意:
//   - http.DefaultClientにはタイムアウトがないため、外部呼び出しは常にこのクライアントを使用すること
//   - 検索グラウンディング付きの応答は数十秒かかるため、timeout は最も遅いモデル呼び出しを見込むこと
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
