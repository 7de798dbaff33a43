package published

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T, files map[string]string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := files[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "", "")
}

func TestClientQuotes(t *testing.T) {
	client := testServer(t, map[string]string{
		"/" + QuotesFile: `{"quotes": ["Numbers rule the universe. — Pythagoras", "No separator here"]}`,
	})

	quotes, err := client.Quotes(context.Background())
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	assert.Equal(t, "Numbers rule the universe.", quotes[0].Text)
	assert.Equal(t, "Pythagoras", quotes[0].Author)
	assert.Equal(t, "No separator here", quotes[1].Text)
	assert.Empty(t, quotes[1].Author)
}

func TestClientArticles(t *testing.T) {
	client := testServer(t, map[string]string{
		"/" + ArticlesFile: `{"articles": [{"id": 1, "title": "On Limits", "category": "analysis", "content": "...", "excerpt": "...", "date": "January 1, 2026", "readTime": 4}]}`,
	})

	articles, err := client.Articles(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, int64(1), articles[0].ID)
	assert.Equal(t, "On Limits", articles[0].Title)
	assert.Equal(t, 4, articles[0].ReadTime)
}

func TestClientBooksArray(t *testing.T) {
	client := testServer(t, map[string]string{
		"/" + LibraryFile: `[{"title": "Elements", "author": "Euclid", "category": "geometry", "year": "-300", "pages": 300}]`,
	})

	books, err := client.Books(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Euclid", books[0].Author)
	assert.Equal(t, 300, books[0].Pages)
}

func TestClientBooksSingleObject(t *testing.T) {
	client := testServer(t, map[string]string{
		"/" + LibraryFile: `{"title": "Elements", "author": "Euclid", "category": "geometry"}`,
	})

	books, err := client.Books(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Elements", books[0].Title)
}

func TestClientNonOKStatus(t *testing.T) {
	client := testServer(t, map[string]string{})

	_, err := client.Quotes(context.Background())
	require.Error(t, err, "a 404 from the published source is an error for the caller to recover from")
}

func TestClientMalformedPayload(t *testing.T) {
	client := testServer(t, map[string]string{
		"/" + QuotesFile:  `{"quotes": "not a list"}`,
		"/" + LibraryFile: `not json at all`,
	})

	_, err := client.Quotes(context.Background())
	require.Error(t, err)

	_, err = client.Books(context.Background())
	require.Error(t, err)
}

func TestClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(srv.URL, "", "")
	srv.Close()

	_, err := client.Articles(context.Background())
	require.Error(t, err)
}
