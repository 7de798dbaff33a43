package content

import (
	"strings"
	"testing"
	"time"
)

func TestNewArticleDerivedFields(t *testing.T) {
	body := strings.Repeat("word ", 399) + "word" // 400 words
	now := time.Date(2026, time.January, 15, 10, 30, 0, 0, time.UTC)

	article := NewArticle("Title", "analysis", body, now)

	if article.ID != now.UnixMilli() {
		t.Errorf("expected id %d, got %d", now.UnixMilli(), article.ID)
	}
	if article.ReadTime != 2 {
		t.Errorf("expected 2 minute read time for 400 words, got %d", article.ReadTime)
	}
	if article.Date != "January 15, 2026" {
		t.Errorf("unexpected date: %q", article.Date)
	}
	if !strings.HasSuffix(article.Excerpt, "...") {
		t.Errorf("excerpt missing ellipsis: %q", article.Excerpt)
	}
	if got := len([]rune(article.Excerpt)); got != 153 {
		t.Errorf("expected a 150-character excerpt plus ellipsis, got %d", got)
	}
}

func TestReadTimeMinimum(t *testing.T) {
	if got := ReadTime("just a few words"); got != 1 {
		t.Errorf("expected a 1 minute floor, got %d", got)
	}
}

func TestExcerptShortBody(t *testing.T) {
	if got := Excerpt("short"); got != "short..." {
		t.Errorf("unexpected excerpt: %q", got)
	}
}

func TestExcerptMultibyte(t *testing.T) {
	body := strings.Repeat("é", 200)
	got := Excerpt(body)
	if got != strings.Repeat("é", 150)+"..." {
		t.Errorf("excerpt split a multibyte rune: %q", got[:20])
	}
}

func TestParseQuoteLine(t *testing.T) {
	q := ParseQuoteLine("Mathematics is the language in which God has written the universe. — Galileo Galilei")
	if q.Text != "Mathematics is the language in which God has written the universe." {
		t.Errorf("unexpected text: %q", q.Text)
	}
	if q.Author != "Galileo Galilei" {
		t.Errorf("unexpected author: %q", q.Author)
	}
}

func TestParseQuoteLineNoAuthor(t *testing.T) {
	q := ParseQuoteLine("  just words  ")
	if q.Text != "just words" || q.Author != "" {
		t.Errorf("unexpected quote: %v", q)
	}
}

func TestQuoteLineRoundTrip(t *testing.T) {
	q := Quote{Text: "Numbers rule the universe.", Author: "Pythagoras"}
	if got := ParseQuoteLine(q.Line()); got.Text != q.Text || got.Author != q.Author {
		t.Errorf("round trip changed the quote: %v", got)
	}
}

func TestNewBookDefaultsCover(t *testing.T) {
	book := NewBook("T", "A", "physics", "1687", "d", "", "https://example.com/f", time.Now())
	if book.Cover != DefaultBookCover {
		t.Errorf("expected the default cover, got %q", book.Cover)
	}

	book = NewBook("T", "A", "physics", "1687", "d", "cover/custom.jpg", "https://example.com/f", time.Now())
	if book.Cover != "cover/custom.jpg" {
		t.Errorf("expected the provided cover, got %q", book.Cover)
	}
}
