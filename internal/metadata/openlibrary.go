// Package metadata looks up bibliographic data for an ISBN from the
// OpenLibrary books API and maps it into a catalog book draft.
package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/martioalanshori/bookcatalog/internal/entities"
)

// Lookup failure modes callers branch on. Transport failures are
// returned as wrapped errors from the underlying HTTP client.
var (
	// ErrNotFound means the service responded but has no record for
	// the ISBN.
	ErrNotFound = errors.New("no book found for ISBN")
	// ErrUnexpectedResponse means the service replied with a non-OK
	// status or an undecodable payload.
	ErrUnexpectedResponse = errors.New("unexpected response from metadata service")
)

// BookInfo is the bibliographic record the OpenLibrary books API
// returns for one bibkey. All fields are optional.
type BookInfo struct {
	Title         string      `json:"title"`
	Authors       []Author    `json:"authors"`
	Publishers    []Publisher `json:"publishers"`
	PublishDate   string      `json:"publish_date"`
	NumberOfPages int         `json:"number_of_pages"`
	Subjects      []Subject   `json:"subjects"`
	Cover         *Cover      `json:"cover"`
	URL           string      `json:"url"`
}

type Author struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Publisher struct {
	Name string `json:"name"`
}

type Subject struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Cover struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// Client fetches book metadata from the OpenLibrary API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rateLimiter
}

type rateLimiter struct {
	mu       sync.Mutex
	lastCall time.Time
	interval time.Duration
}

func newRateLimiter(interval time.Duration) *rateLimiter {
	return &rateLimiter{interval: interval}
}

func (r *rateLimiter) wait() {
	r.mu.Lock()
	defer r.mu.Unlock()

	since := time.Since(r.lastCall)
	if since < r.interval {
		time.Sleep(r.interval - since)
	}
	r.lastCall = time.Now()
}

// NewClient creates an OpenLibrary API client with rate limiting.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		rateLimiter: newRateLimiter(time.Second), // 1 request per second
	}
}

// LookupISBN fetches the bibliographic record for an ISBN. The ISBN may
// contain hyphens or spaces; they are stripped before the request.
func (c *Client) LookupISBN(ctx context.Context, isbn string) (*BookInfo, error) {
	isbn = normalizeISBN(isbn)
	if isbn == "" {
		return nil, fmt.Errorf("invalid ISBN")
	}

	c.rateLimiter.wait()

	bibkey := "ISBN:" + isbn
	lookupURL := fmt.Sprintf("%s/api/books?bibkeys=%s&format=json&jscmd=data", c.baseURL, url.QueryEscape(bibkey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "BookCatalog/1.0 (https://github.com/martioalanshori/bookcatalog)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch ISBN data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnexpectedResponse, resp.StatusCode)
	}

	var records map[string]BookInfo
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}

	// An absent bibkey is a normal miss, not a transport fault.
	info, ok := records[bibkey]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, isbn)
	}
	return &info, nil
}

// ToBookDraft maps a bibliographic record into an unpersisted book.
// The mapping is total: every missing field falls back to a fixed
// placeholder, so it never fails.
func ToBookDraft(info *BookInfo, isbn string) entities.Book {
	book := entities.Book{
		Title:    "Unknown Title",
		Author:   "Unknown Author",
		ISBN:     isbn,
		Category: "General",
		Status:   entities.StatusAvailable,
	}

	if info.Title != "" {
		book.Title = info.Title
	}
	if len(info.Authors) > 0 && info.Authors[0].Name != "" {
		book.Author = info.Authors[0].Name
	}
	book.Year = extractYear(info.PublishDate)

	if len(info.Subjects) > 0 {
		if info.Subjects[0].Name != "" {
			book.Category = info.Subjects[0].Name
		}
		names := make([]string, len(info.Subjects))
		for i, s := range info.Subjects {
			names[i] = s.Name
		}
		book.Description = strings.Join(names, ", ")
	}

	return book
}

// normalizeISBN removes hyphens and spaces from ISBN.
func normalizeISBN(isbn string) string {
	isbn = strings.ReplaceAll(isbn, "-", "")
	isbn = strings.ReplaceAll(isbn, " ", "")
	isbn = strings.TrimSpace(isbn)

	// Basic validation: ISBN-10 or ISBN-13
	if len(isbn) != 10 && len(isbn) != 13 {
		return ""
	}

	return isbn
}

// extractYear tries to extract a 4-digit year from a date string.
func extractYear(dateStr string) int {
	dateStr = strings.TrimSpace(dateStr)
	if len(dateStr) < 4 {
		return 0
	}

	// Try parsing common formats
	formats := []string{
		"2006",
		"January 2, 2006",
		"Jan 2, 2006",
		"2006-01-02",
		"January 2006",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t.Year()
		}
	}

	// Last resort: find 4 consecutive digits
	for i := 0; i <= len(dateStr)-4; i++ {
		if dateStr[i] >= '0' && dateStr[i] <= '9' {
			yearStr := dateStr[i : i+4]
			var year int
			if _, err := fmt.Sscanf(yearStr, "%d", &year); err == nil && year > 1000 && year < 3000 {
				return year
			}
		}
	}

	return 0
}
