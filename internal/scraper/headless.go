package scraper

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// fetchHeadless renders the page in headless Chrome and reads the body
// text, for postings served as client-side-rendered shells.
func (s *JobScraper) fetchHeadless(ctx context.Context, url string) (string, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, s.timeout)
	defer reqCancel()

	var text string
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.EvaluateAsDevTools(`(() => {
			for (const el of document.querySelectorAll('script, style, noscript')) el.remove();
			return document.body ? document.body.innerText : '';
		})()`, &text),
	)
	if err != nil {
		return "", err
	}
	return normalizeText(text), nil
}
