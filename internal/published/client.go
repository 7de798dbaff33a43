package published

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"portfolio-go-app/internal/content"
)

// File names of the static content files, relative to the published base.
const (
	QuotesFile   = "quotes/mathematics.json"
	ArticlesFile = "articles.json"
	LibraryFile  = "library.json"
)

type quotesPayload struct {
	Quotes []string `json:"quotes"`
}

type articlesPayload struct {
	Articles []content.Article `json:"articles"`
}

// Source is the published-content surface the HTTP layer consumes. Client
// and Cache both satisfy it. Every error it returns is a recoverable
// source-unavailable condition: callers fall back, they never fail the page.
type Source interface {
	Quotes(ctx context.Context) ([]content.Quote, error)
	Articles(ctx context.Context) ([]content.Article, error)
	Books(ctx context.Context) ([]content.Book, error)
}

// Client fetches the published content files, either from a plain HTTP base
// URL or from an S3 bucket when one is configured.
type Client struct {
	baseURL string
	bucket  string
	httpc   *http.Client
	s3svc   *s3.S3
}

func NewClient(baseURL, bucket, awsRegion string) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		bucket:  bucket,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
	if bucket != "" {
		sess := session.Must(session.NewSession(&aws.Config{
			Region: aws.String(awsRegion),
		}))
		c.s3svc = s3.New(sess)
	}
	return c
}

// Quotes fetches and parses the published quotes file. Each entry has the
// "<text> — <author>" shape.
func (c *Client) Quotes(ctx context.Context) ([]content.Quote, error) {
	raw, err := c.fetch(ctx, QuotesFile)
	if err != nil {
		return nil, err
	}
	return parseQuotes(raw)
}

// Articles fetches and parses the published articles file.
func (c *Client) Articles(ctx context.Context) ([]content.Article, error) {
	raw, err := c.fetch(ctx, ArticlesFile)
	if err != nil {
		return nil, err
	}
	return parseArticles(raw)
}

// Books fetches and parses the library file.
func (c *Client) Books(ctx context.Context) ([]content.Book, error) {
	raw, err := c.fetch(ctx, LibraryFile)
	if err != nil {
		return nil, err
	}
	return parseBooks(raw)
}

func (c *Client) fetch(ctx context.Context, name string) ([]byte, error) {
	if c.s3svc != nil {
		return c.fetchS3(name)
	}
	return c.fetchHTTP(ctx, name)
}

func (c *Client) fetchHTTP(ctx context.Context, name string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+name, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			fmt.Println("Error closing published response body:", err)
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("published source returned non-OK status: %v", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) fetchS3(name string) ([]byte, error) {
	output, err := c.s3svc.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		return nil, err
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			fmt.Println("Error closing S3 response body:", err)
		}
	}(output.Body)

	return io.ReadAll(output.Body)
}

func parseQuotes(raw []byte) ([]content.Quote, error) {
	var payload quotesPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	quotes := make([]content.Quote, 0, len(payload.Quotes))
	for _, line := range payload.Quotes {
		quotes = append(quotes, content.ParseQuoteLine(line))
	}
	return quotes, nil
}

func parseArticles(raw []byte) ([]content.Article, error) {
	var payload articlesPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	return payload.Articles, nil
}

// parseBooks handles both shapes the library file has had over time: a JSON
// array of books or a single book object.
func parseBooks(raw []byte) ([]content.Book, error) {
	var books []content.Book
	if err := json.Unmarshal(raw, &books); err != nil {
		var single content.Book
		if err2 := json.Unmarshal(raw, &single); err2 != nil {
			return nil, err
		}
		books = []content.Book{single}
	}
	return books, nil
}
