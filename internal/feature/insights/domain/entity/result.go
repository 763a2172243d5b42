// Package entity はinsightsフィーチャーのドメインモデルを定義します。
package entity

// Result はゲートウェイ呼び出しの結果です。成功時はペイロード、失敗時は利用者向けの理由文字列を持ちます。
// 失敗は型付きエラーではなく表示可能なデータとして扱います。
type Result[T any] struct {
	value  T
	reason string
	ok     bool
}

// Ok は成功結果を返します。
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Err は失敗結果を返します。
func Err[T any](reason string) Result[T] {
	return Result[T]{reason: reason}
}

// IsOk は成功結果かどうかを返します。
func (r Result[T]) IsOk() bool { return r.ok }

// Value はペイロードと成功フラグを返します。
func (r Result[T]) Value() (T, bool) { return r.value, r.ok }

// Reason は失敗理由を返します。成功時は空文字です。
func (r Result[T]) Reason() string { return r.reason }
