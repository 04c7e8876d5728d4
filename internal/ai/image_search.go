package ai

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/windoze95/recipegen/internal/logger"
	"go.uber.org/zap"
)

const (
	// MaxImages is the most URLs a search returns.
	MaxImages = 4

	imageQuerySuffix = " recipe image"
	maxImageBodySize = 5 << 20
)

// jpgLiteralPattern matches double-quoted https URLs ending in .jpg.
var jpgLiteralPattern = regexp.MustCompile(`"https://[^"]+?\.jpg"`)

// ScrapeImageSearcher implements ImageSearcher by scraping a public image
// search results page. The markup is uncontracted, so every failure
// degrades to an empty result.
type ScrapeImageSearcher struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewScrapeImageSearcher creates a searcher for the given results page.
func NewScrapeImageSearcher(baseURL, userAgent string, timeout time.Duration) *ScrapeImageSearcher {
	return &ScrapeImageSearcher{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search returns up to MaxImages .jpg URLs for "<query> recipe image", in
// document order and without dedupe. It never returns nil.
func (s *ScrapeImageSearcher) Search(ctx context.Context, query string) []string {
	log := logger.With(zap.String("query", query))

	body, err := s.fetch(ctx, query+imageQuerySuffix)
	if err != nil {
		log.Warn("image search failed", zap.Error(err))
		return []string{}
	}

	urls := extractJPGURLs(body, MaxImages)
	if len(urls) == 0 {
		log.Info("image search returned no matches")
	}
	return urls
}

func (s *ScrapeImageSearcher) fetch(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("hl", "en")
	params.Set("tbm", "isch")
	params.Set("q", query)

	reqURL := fmt.Sprintf("%s?%s", s.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create image search request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("image search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image search returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBodySize))
	if err != nil {
		return "", fmt.Errorf("failed to read image search response: %w", err)
	}
	return string(body), nil
}

// extractJPGURLs returns the first limit quoted .jpg literals in body with
// their quotes stripped.
func extractJPGURLs(body string, limit int) []string {
	matches := jpgLiteralPattern.FindAllString(body, limit)
	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		urls = append(urls, strings.Trim(m, `"`))
	}
	return urls
}
