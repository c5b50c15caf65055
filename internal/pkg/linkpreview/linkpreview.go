package linkpreview

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

var youtubeWatchPattern = regexp.MustCompile(`^(https?://(?:www\.)?youtube\.com)/watch\?v=([\w-]{11})\S*$`)

// Metadata is what a page yields for a preview card.
type Metadata struct {
	Title          string
	Description    string
	Images         []string
	ThumbnailImage string
}

// Canonicalize normalizes a URL so equivalent links share one cache entry.
// YouTube watch URLs lose their extra query parameters.
func Canonicalize(rawURL string) string {
	if m := youtubeWatchPattern.FindStringSubmatch(rawURL); m != nil {
		return fmt.Sprintf("%s/watch?v=%s", m[1], m[2])
	}
	return rawURL
}

type Fetcher struct {
	httpClient *http.Client
}

func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch downloads the page and extracts Open Graph metadata, falling back to
// the document title. YouTube watch URLs get a deterministic thumbnail
// without relying on the page markup.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Metadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "messenger-service/1.0")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	meta := &Metadata{}

	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		property, _ := s.Attr("property")
		content, _ := s.Attr("content")
		if content == "" {
			return
		}
		switch property {
		case "og:title":
			if meta.Title == "" {
				meta.Title = content
			}
		case "og:description":
			if meta.Description == "" {
				meta.Description = content
			}
		case "og:image":
			meta.Images = append(meta.Images, content)
		}
	})

	if meta.Title == "" {
		meta.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	if m := youtubeWatchPattern.FindStringSubmatch(rawURL); m != nil {
		meta.ThumbnailImage = fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", m[2])
	} else if len(meta.Images) > 0 {
		meta.ThumbnailImage = meta.Images[0]
	}

	return meta, nil
}
