// Package fetch - browser.go renders JavaScript-heavy pages in a headless
// browser. Threads is a React SPA, so the plain HTTP response sometimes
// carries only a shell without the og: metadata the scraper needs.
package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinRenderedLength is the minimum HTML length to consider a plain HTTP
// fetch usable. Shorter responses are treated as an unrendered app shell.
const MinRenderedLength = 2000

// ShouldUseBrowser reports whether the plain HTTP response looks like an
// unrendered shell that needs a real browser. A page missing Open Graph
// metadata gives the scraper nothing to work with even when it is long.
func ShouldUseBrowser(html string) bool {
	if len(strings.TrimSpace(html)) < MinRenderedLength {
		return true
	}
	return !strings.Contains(html, `property="og:title"`) &&
		!strings.Contains(html, `property="og:description"`)
}

// WithBrowser renders a page in a headless browser and returns the rendered
// HTML. Requires Chrome/Chromium to be installed on the system.
func WithBrowser(ctx context.Context, url string, timeout time.Duration) (string, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.Flag("lang", "ja"),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string

	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Give the client-side app a moment to hydrate its metadata.
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	return html, nil
}

// BrowserSimple renders a page with the default timeout.
func BrowserSimple(ctx context.Context, url string) (string, error) {
	return WithBrowser(ctx, url, DefaultTimeout)
}
