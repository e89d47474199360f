package fundamentals

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"SwingScope/internal/model"
)

// defaultBaseURL is the public screener site the ratios are scraped from.
const defaultBaseURL = "https://www.screener.in"

// Scraper extracts fundamental ratios from a company page. Extraction is
// best-effort: rows that fail to decompose into a label/value pair are
// skipped and counted, never surfaced as errors.
type Scraper struct {
	BaseURL string
	Client  *http.Client
}

// NewScraper creates a scraper with an optional proxy and base URL override.
func NewScraper(baseURL, proxyURL string, timeout time.Duration) *Scraper {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Scraper{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Fetch downloads the company page for a stock code and extracts its
// fundamentals. Transport failures are returned as errors; a page that
// yields no parseable rows produces an empty report.
func (s *Scraper) Fetch(ctx context.Context, code string) (*model.FundamentalsReport, error) {
	u := fmt.Sprintf("%s/company/%s/", s.BaseURL, url.PathEscape(code))
	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fundamentals fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return &model.FundamentalsReport{Symbol: code}, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fundamentals fetch: status %d, body: %s", resp.StatusCode, string(body))
	}

	report, err := Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fundamentals parse: %w", err)
	}
	report.Symbol = code
	return report, nil
}

// Parse extracts fundamentals from a company page document. Three sections
// are scanned independently: the summary ratio list, the supplementary
// factoid list, and the shareholding table.
func Parse(r io.Reader) (*model.FundamentalsReport, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	report := &model.FundamentalsReport{}

	// Summary ratios: div.company-ratios > li with name/value spans.
	doc.Find("div.company-ratios li").Each(func(_ int, li *goquery.Selection) {
		appendNameValue(report, li)
	})

	// Supplementary factoids share the same name/value span layout.
	doc.Find("li.flex.flex-space-between").Each(func(_ int, li *goquery.Selection) {
		appendNameValue(report, li)
	})

	// Shareholding table: first two cells of each row.
	doc.Find("section#shareholding tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 2 {
			report.Skipped++
			return
		}
		label := strings.TrimSpace(cells.Eq(0).Text())
		value := strings.TrimSpace(cells.Eq(1).Text())
		if label == "" {
			report.Skipped++
			return
		}
		report.Rows = append(report.Rows, model.FundamentalRow{Label: label, Value: value})
	})

	return report, nil
}

// appendNameValue extracts a span.name/span.value pair from a list item,
// counting the row as skipped when either part is missing.
func appendNameValue(report *model.FundamentalsReport, li *goquery.Selection) {
	name := strings.TrimSpace(li.Find("span.name").First().Text())
	value := strings.TrimSpace(li.Find("span.value").First().Text())
	if name == "" || value == "" {
		report.Skipped++
		return
	}
	report.Rows = append(report.Rows, model.FundamentalRow{Label: name, Value: collapseSpace(value)})
}

// collapseSpace squashes runs of whitespace that HTML formatting leaves
// inside value text.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
