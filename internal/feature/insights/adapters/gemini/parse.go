package gemini

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"google.golang.org/genai"

	"arthasutra_backend/internal/feature/insights/domain/entity"
)

var (
	errEmptyResponse = errors.New("model returned no text")
	errMissingScore  = errors.New("model reply has no score")
)

var (
	scoreLine     = regexp.MustCompile(`(?im)^\s*\**SCORE\**\s*:\s*\**\s*([-+]?(?:\d+(?:\.\d*)?|\.\d+))`)
	sentimentLine = regexp.MustCompile(`(?im)^\s*\**SENTIMENT\**\s*:\s*\**\s*(.+?)\s*$`)
)

// stripFences はモデルが付けがちなMarkdownのコードフェンスを取り除きます。
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}

func parseAdvice(text string) (entity.Advice, error) {
	text = stripFences(text)
	if text == "" {
		return entity.Advice{}, errEmptyResponse
	}
	var a entity.Advice
	if err := json.Unmarshal([]byte(text), &a); err != nil {
		return entity.Advice{}, fmt.Errorf("decode advice: %w", err)
	}
	a.Intraday.Stock = strings.TrimSpace(a.Intraday.Stock)
	a.MidTerm.Stock = strings.TrimSpace(a.MidTerm.Stock)
	a.LongTerm.Stock = strings.TrimSpace(a.LongTerm.Stock)
	if err := a.Validate(); err != nil {
		return entity.Advice{}, err
	}
	return a, nil
}

// parseSentiment は "SENTIMENT:" と "SCORE:" の2行形式の応答を解釈します。
func parseSentiment(text string) (entity.Sentiment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entity.Sentiment{}, errEmptyResponse
	}

	m := scoreLine.FindStringSubmatch(text)
	if m == nil {
		return entity.Sentiment{}, errMissingScore
	}
	score, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return entity.Sentiment{}, fmt.Errorf("parse score %q: %w", m[1], err)
	}

	summary := ""
	if s := sentimentLine.FindStringSubmatch(text); s != nil {
		summary = strings.Trim(s[1], "* ")
	} else {
		// ラベルなしの場合はスコア行以外の最初の行を要約とする
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line != "" && !scoreLine.MatchString(line) {
				summary = line
				break
			}
		}
	}
	if summary == "" {
		return entity.Sentiment{}, errors.New("model reply has no summary")
	}

	return entity.Sentiment{Summary: summary, Score: entity.ClampScore(score)}, nil
}

// groundingSources は検索グラウンディングの出典をURIで重複排除して返します。
// タイトルがない場合はURIで代用します。
func groundingSources(resp *genai.GenerateContentResponse) []entity.Source {
	out := []entity.Source{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return out
	}
	gm := resp.Candidates[0].GroundingMetadata
	if gm == nil {
		return out
	}
	seen := make(map[string]struct{}, len(gm.GroundingChunks))
	for _, ch := range gm.GroundingChunks {
		if ch == nil || ch.Web == nil || ch.Web.URI == "" {
			continue
		}
		if _, dup := seen[ch.Web.URI]; dup {
			continue
		}
		seen[ch.Web.URI] = struct{}{}
		title := strings.TrimSpace(ch.Web.Title)
		if title == "" {
			title = ch.Web.URI
		}
		out = append(out, entity.Source{URI: ch.Web.URI, Title: title})
	}
	return out
}

// parseNews は応答中のJSON配列を取り出し、見出しとhttp(s)のURLを持つ記事だけを最大件数まで返します。
func parseNews(text string) ([]entity.Article, error) {
	text = stripFences(text)
	if text == "" {
		return nil, errEmptyResponse
	}
	start, end := strings.IndexByte(text, '['), strings.LastIndexByte(text, ']')
	if start < 0 || end < start {
		return nil, errors.New("model reply has no JSON array")
	}

	var raw []entity.Article
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("decode news: %w", err)
	}

	out := make([]entity.Article, 0, min(len(raw), entity.MaxArticles))
	for _, a := range raw {
		if len(out) == entity.MaxArticles {
			break
		}
		a.Title = strings.TrimSpace(a.Title)
		a.URL = strings.TrimSpace(a.URL)
		a.Source = strings.TrimSpace(a.Source)
		u, err := url.Parse(a.URL)
		if a.Title == "" || err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			continue
		}
		if a.Source == "" {
			a.Source = strings.TrimPrefix(u.Hostname(), "www.")
		}
		out = append(out, a)
	}
	return out, nil
}
