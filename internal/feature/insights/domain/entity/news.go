package entity

// MaxArticles は1銘柄あたりに表示するニュースの上限件数です。
const MaxArticles = 5

// Article はニュース記事の見出しとリンクです。
type Article struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
}
