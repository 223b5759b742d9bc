package scraper

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

// JobScraper fetches the visible text of a job posting page. It tries a
// plain HTTP fetch first and falls back to a headless browser when the
// page is rendered client-side.
type JobScraper struct {
	log     *log.Logger
	timeout time.Duration

	// minStaticText is the body length below which the static fetch is
	// assumed to have hit a JS-rendered shell.
	minStaticText int
}

func NewJobScraper(logger *log.Logger) *JobScraper {
	if logger == nil {
		logger = log.Default()
	}
	return &JobScraper{
		log:           logger,
		timeout:       25 * time.Second,
		minStaticText: 200,
	}
}

// Scrape returns the whitespace-normalized text content of the page at
// rawURL with script and style content stripped.
func (s *JobScraper) Scrape(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("invalid job url: %q", rawURL)
	}

	text, err := s.fetchStatic(ctx, u)
	if err == nil && len(text) >= s.minStaticText {
		return text, nil
	}
	if err != nil {
		s.log.Printf("scraper static fetch failed url=%s err=%v, trying headless", u, err)
	} else {
		s.log.Printf("scraper static fetch thin url=%s chars=%d, trying headless", u, len(text))
	}

	headless, herr := s.fetchHeadless(ctx, u.String())
	if herr != nil {
		if err == nil && text != "" {
			return text, nil
		}
		if err != nil {
			return "", fmt.Errorf("scrape %s: %w", u, err)
		}
		return "", fmt.Errorf("scrape %s: %w", u, herr)
	}
	return headless, nil
}

func (s *JobScraper) fetchStatic(ctx context.Context, u *url.URL) (string, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(u.Hostname()),
	)
	c.SetRequestTimeout(s.timeout)
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	})

	var text string
	c.OnHTML("body", func(e *colly.HTMLElement) {
		e.DOM.Find("script, style, noscript").Remove()
		text = normalizeText(e.DOM.Text())
	})

	var fetchErr error
	c.OnError(func(_ *colly.Response, err error) {
		fetchErr = err
	})

	if err := c.Visit(u.String()); err != nil {
		return "", err
	}
	c.Wait()

	if fetchErr != nil {
		return "", fetchErr
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	return text, nil
}

func normalizeText(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
