// Package entity は銘柄カタログの永続化モデルを定義します。
package entity

import "time"

// Symbol は catalog_symbols テーブルの1行です。
// 起動時に一度だけ読み込まれ、不変のカタログに変換されます。
type Symbol struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	Sector    string    `gorm:"size:50;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName はgormのデフォルトテーブル名を上書きします。
func (Symbol) TableName() string {
	return "catalog_symbols"
}
