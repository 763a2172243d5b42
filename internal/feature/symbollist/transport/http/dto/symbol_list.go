// Package dto は銘柄カタログHTTP APIのデータ転送オブジェクトを定義します。
package dto

// SymbolItem はAPIレスポンス中のカタログ銘柄です。
// クライアントに必要な公開フィールドのみを含みます。
type SymbolItem struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Sector string `json:"sector"`
}
