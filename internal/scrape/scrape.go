// Package scrape extracts post content and profile metadata from public
// Threads pages. Threads does not expose engagement counts on public pages,
// so scraped results carry content and author data only; counts are entered
// by hand or pulled through the API.
package scrape

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/haruto/threads-studio/internal/fetch"
)

// URLType classifies a Threads URL.
type URLType string

// URLType values.
const (
	URLTypePost    URLType = "post"
	URLTypeProfile URLType = "profile"
)

// Scrape errors.
var (
	ErrNotThreadsURL = errors.New("not a threads.net URL")
	ErrNoContent     = errors.New("could not extract post content from page")
	ErrNoUsername    = errors.New("could not extract username from profile URL")
)

// PostResult is what a post page yields.
type PostResult struct {
	URL        string `json:"url"`
	Content    string `json:"content"`
	AuthorName string `json:"authorName,omitempty"`
}

// ProfileResult is what a profile page yields.
type ProfileResult struct {
	URL            string `json:"url"`
	AuthorName     string `json:"authorName,omitempty"`
	AuthorUsername string `json:"authorUsername"`
	Followers      *int   `json:"followers,omitempty"`
}

var (
	authorPattern    = regexp.MustCompile(`^(.+?)(?:\s*\(@|on Threads)`)
	usernamePattern  = regexp.MustCompile(`@([^/?]+)`)
	followersPattern = regexp.MustCompile(`([\d,.]+[KMB]?)\s*[Ff]ollowers`)
	profileSuffix    = regexp.MustCompile(` \(@.+\).*$`)
)

// DetectURLType classifies a Threads URL. Post permalinks carry a /post/ or
// /p/ path segment; everything else is treated as a profile.
func DetectURLType(url string) URLType {
	if strings.Contains(url, "/post/") || strings.Contains(url, "/p/") {
		return URLTypePost
	}
	return URLTypeProfile
}

// Scraper fetches and parses Threads pages. UseBrowser enables the headless
// fallback for responses that come back as an unrendered app shell.
type Scraper struct {
	UseBrowser bool
}

// Post scrapes a single post page.
func (s *Scraper) Post(ctx context.Context, url string) (*PostResult, error) {
	html, err := s.pageHTML(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParsePost(url, html)
}

// Profile scrapes a profile page.
func (s *Scraper) Profile(ctx context.Context, url string) (*ProfileResult, error) {
	html, err := s.pageHTML(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParseProfile(url, html)
}

func (s *Scraper) pageHTML(ctx context.Context, url string) (string, error) {
	if !strings.Contains(url, "threads.net") {
		return "", ErrNotThreadsURL
	}

	result, err := fetch.URL(ctx, url, nil)
	if err != nil {
		return "", err
	}

	html := result.HTML
	if s.UseBrowser && fetch.ShouldUseBrowser(html) {
		rendered, err := fetch.BrowserSimple(ctx, url)
		if err == nil {
			html = rendered
		}
	}
	return html, nil
}

// ParsePost extracts post content and author from a post page's HTML. The
// og: tags are the primary source; JSON-LD refines them when present and
// parseable, and JSON-LD parse errors are ignored.
func ParsePost(url, html string) (*PostResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	content, _ := doc.Find(`meta[property="og:description"]`).Attr("content")
	ogTitle, _ := doc.Find(`meta[property="og:title"]`).Attr("content")

	var authorName string
	if ogTitle != "" {
		if match := authorPattern.FindStringSubmatch(ogTitle); match != nil {
			authorName = strings.TrimSpace(match[1])
		}
	}

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		var data struct {
			ArticleBody string `json:"articleBody"`
			Author      struct {
				Name string `json:"name"`
			} `json:"author"`
		}
		if err := json.Unmarshal([]byte(sel.Text()), &data); err != nil {
			return
		}
		if data.ArticleBody != "" {
			content = data.ArticleBody
		}
		if data.Author.Name != "" {
			authorName = data.Author.Name
		}
	})

	if content == "" {
		return nil, ErrNoContent
	}

	return &PostResult{
		URL:        url,
		Content:    content,
		AuthorName: authorName,
	}, nil
}

// ParseProfile extracts display name, username and follower count from a
// profile page's HTML. The follower count comes out of the og:description
// ("1,234 Followers" style) when present.
func ParseProfile(url, html string) (*ProfileResult, error) {
	match := usernamePattern.FindStringSubmatch(url)
	if match == nil {
		return nil, ErrNoUsername
	}
	username := match[1]

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	ogTitle, _ := doc.Find(`meta[property="og:title"]`).Attr("content")
	ogDescription, _ := doc.Find(`meta[property="og:description"]`).Attr("content")

	authorName := strings.TrimSpace(profileSuffix.ReplaceAllString(ogTitle, ""))

	var followers *int
	if fmatch := followersPattern.FindStringSubmatch(ogDescription); fmatch != nil {
		if n, ok := ParseFollowerCount(fmatch[1]); ok {
			followers = &n
		}
	}

	return &ProfileResult{
		URL:            url,
		AuthorName:     authorName,
		AuthorUsername: username,
		Followers:      followers,
	}, nil
}

// ParseFollowerCount turns a display count like "12.5K" or "1,234" into a
// number. K, M and B suffixes scale by thousand, million and billion.
func ParseFollowerCount(s string) (int, bool) {
	cleaned := strings.ReplaceAll(s, ",", "")
	upper := strings.ToUpper(cleaned)

	multiplier := 1.0
	switch {
	case strings.Contains(upper, "K"):
		multiplier = 1_000
	case strings.Contains(upper, "M"):
		multiplier = 1_000_000
	case strings.Contains(upper, "B"):
		multiplier = 1_000_000_000
	}
	numeric := strings.TrimRight(upper, "KMB")

	n, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		return 0, false
	}
	return int(math.Round(n * multiplier)), true
}
