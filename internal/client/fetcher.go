package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/fr4nk3nst1ner/dssalaries/internal/dataset"
)

var (
	// ErrUnexpectedStatus is wrapped by FetchError for non-2xx responses
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
	// ErrHTMLBody is wrapped by FetchError when the server answered with an HTML page
	ErrHTMLBody = errors.New("server returned an HTML page instead of CSV")
)

// Fetcher downloads the dataset body with a single GET, no retries
type Fetcher struct {
	HTTPClient *http.Client
	// Progress, when non-nil, receives a download progress bar
	Progress io.Writer
	Logger   zerolog.Logger
}

// NewFetcher returns a Fetcher using the given client and a disabled logger
func NewFetcher(httpClient *http.Client) *Fetcher {
	return &Fetcher{
		HTTPClient: httpClient,
		Logger:     zerolog.Nop(),
	}
}

// Fetch performs one GET against rawURL and returns the body as text.
// Every failure is returned as *dataset.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &dataset.FetchError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/csv,text/plain;q=0.9,*/*;q=0.5")

	f.Logger.Debug().Str("url", rawURL).Msg("fetching dataset")

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return "", &dataset.FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &dataset.FetchError{URL: rawURL, StatusCode: resp.StatusCode, Err: ErrUnexpectedStatus}
	}

	var body io.Reader = resp.Body
	if f.Progress != nil {
		total := resp.ContentLength
		if total < 0 {
			total = 0
		}
		bar := pb.New64(total).SetTemplate(pb.Full).SetWriter(f.Progress).Start()
		defer bar.Finish()
		body = bar.NewProxyReader(resp.Body)
	}

	data, err := ReadResponseBody(resp, body)
	if err != nil {
		return "", &dataset.FetchError{URL: rawURL, StatusCode: resp.StatusCode, Err: err}
	}

	f.Logger.Debug().
		Int("status", resp.StatusCode).
		Str("size", humanize.Bytes(uint64(len(data)))).
		Msg("dataset downloaded")

	text := string(data)
	if isHTML(resp.Header.Get("Content-Type"), text) {
		return "", &dataset.FetchError{URL: rawURL, StatusCode: resp.StatusCode, Err: htmlError(text)}
	}

	return text, nil
}

func isHTML(contentType, body string) bool {
	if strings.Contains(strings.ToLower(contentType), "text/html") {
		return true
	}
	head := strings.ToLower(strings.TrimSpace(body))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}

// htmlError names the page title so the diagnostic says what was served
func htmlError(body string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return ErrHTMLBody
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return ErrHTMLBody
	}
	return fmt.Errorf("%w (%s)", ErrHTMLBody, title)
}
