package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-go-app/internal/content"
)

func TestLocalArticlesNewestFirst(t *testing.T) {
	local := NewLocal(NewMemory())

	first := content.NewArticle("first", "analysis", "body one", time.UnixMilli(1000))
	second := content.NewArticle("second", "algebra", "body two", time.UnixMilli(2000))

	require.NoError(t, local.AddArticle(first))
	require.NoError(t, local.AddArticle(second))

	articles, err := local.Articles()
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "second", articles[0].Title, "insertion must prepend")
	assert.Equal(t, "first", articles[1].Title)
}

func TestLocalDeleteArticleByID(t *testing.T) {
	local := NewLocal(NewMemory())

	a := content.NewArticle("a", "analysis", "body", time.UnixMilli(1000))
	b := content.NewArticle("b", "analysis", "body", time.UnixMilli(2000))
	c := content.NewArticle("c", "analysis", "body", time.UnixMilli(3000))
	require.NoError(t, local.AddArticle(a))
	require.NoError(t, local.AddArticle(b))
	require.NoError(t, local.AddArticle(c))

	removed, err := local.DeleteArticle(b.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	// the survivors keep their ids and relative order
	articles, err := local.Articles()
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, c.ID, articles[0].ID)
	assert.Equal(t, a.ID, articles[1].ID)
}

func TestLocalDeleteMissingID(t *testing.T) {
	local := NewLocal(NewMemory())
	require.NoError(t, local.AddArticle(content.NewArticle("a", "analysis", "body", time.UnixMilli(1000))))

	removed, err := local.DeleteArticle(42)
	require.NoError(t, err)
	assert.False(t, removed)

	articles, err := local.Articles()
	require.NoError(t, err)
	assert.Len(t, articles, 1)
}

func TestLocalMalformedDataReadsEmpty(t *testing.T) {
	kv := NewMemory()
	require.NoError(t, kv.Set(KeyQuotes, "{not json"))
	local := NewLocal(kv)

	quotes, err := local.Quotes()
	require.NoError(t, err, "malformed data must not propagate")
	assert.Empty(t, quotes)
}

func TestLocalEmptyCollections(t *testing.T) {
	local := NewLocal(NewMemory())

	articles, err := local.Articles()
	require.NoError(t, err)
	assert.NotNil(t, articles)
	assert.Empty(t, articles)

	books, err := local.Books()
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestLocalQuoteRoundTrip(t *testing.T) {
	local := NewLocal(NewMemory())

	quote := content.NewQuote("Numbers rule the universe.", "Pythagoras", time.UnixMilli(5000))
	require.NoError(t, local.AddQuote(quote))

	quotes, err := local.Quotes()
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, quote, quotes[0])

	removed, err := local.DeleteQuote(quote.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	quotes, err = local.Quotes()
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestLocalBookRoundTrip(t *testing.T) {
	local := NewLocal(NewMemory())

	book := content.NewBook("Dialogo", "Galileo Galilei", "physics", "1632", "Two world systems", "", "https://example.com/f", time.UnixMilli(7000))
	require.NoError(t, local.AddBook(book))

	books, err := local.Books()
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, book, books[0])
	assert.Equal(t, content.DefaultBookCover, books[0].Cover)
}
