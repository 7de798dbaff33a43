package store

import (
	"encoding/json"
	"log"

	"portfolio-go-app/internal/content"
)

// Keys for the locally-authored collections. Each value is a JSON-encoded
// sequence ordered newest first.
const (
	KeyArticles = "userArticles"
	KeyQuotes   = "customQuotes"
	KeyBooks    = "customBooks"
)

// Local is the typed layer over the KV store for locally-authored content.
// It is the only writer; the published source is never written to.
type Local struct {
	kv KV
}

func NewLocal(kv KV) *Local {
	return &Local{kv: kv}
}

// Articles returns the locally-authored articles, newest first. Malformed
// stored data only loses this one read: it is logged and the collection
// comes back empty.
func (l *Local) Articles() ([]content.Article, error) {
	raw, ok, err := l.kv.Get(KeyArticles)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []content.Article{}, nil
	}
	var articles []content.Article
	if err := json.Unmarshal([]byte(raw), &articles); err != nil {
		log.Printf("Malformed data under %q, treating as empty: %v\n", KeyArticles, err)
		return []content.Article{}, nil
	}
	return articles, nil
}

// AddArticle prepends the article: insertion order is newest first.
func (l *Local) AddArticle(article content.Article) error {
	articles, err := l.Articles()
	if err != nil {
		return err
	}
	return l.save(KeyArticles, append([]content.Article{article}, articles...))
}

// DeleteArticle removes by id. Ids are stable; positions are not.
func (l *Local) DeleteArticle(id int64) (bool, error) {
	articles, err := l.Articles()
	if err != nil {
		return false, err
	}
	kept := make([]content.Article, 0, len(articles))
	removed := false
	for _, a := range articles {
		if a.ID == id {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	if !removed {
		return false, nil
	}
	return true, l.save(KeyArticles, kept)
}

// Quotes returns the locally-authored quotes, newest first.
func (l *Local) Quotes() ([]content.Quote, error) {
	raw, ok, err := l.kv.Get(KeyQuotes)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []content.Quote{}, nil
	}
	var quotes []content.Quote
	if err := json.Unmarshal([]byte(raw), &quotes); err != nil {
		log.Printf("Malformed data under %q, treating as empty: %v\n", KeyQuotes, err)
		return []content.Quote{}, nil
	}
	return quotes, nil
}

func (l *Local) AddQuote(quote content.Quote) error {
	quotes, err := l.Quotes()
	if err != nil {
		return err
	}
	return l.save(KeyQuotes, append([]content.Quote{quote}, quotes...))
}

func (l *Local) DeleteQuote(id int64) (bool, error) {
	quotes, err := l.Quotes()
	if err != nil {
		return false, err
	}
	kept := make([]content.Quote, 0, len(quotes))
	removed := false
	for _, q := range quotes {
		if q.ID == id {
			removed = true
			continue
		}
		kept = append(kept, q)
	}
	if !removed {
		return false, nil
	}
	return true, l.save(KeyQuotes, kept)
}

// Books returns the locally-authored books, newest first.
func (l *Local) Books() ([]content.Book, error) {
	raw, ok, err := l.kv.Get(KeyBooks)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []content.Book{}, nil
	}
	var books []content.Book
	if err := json.Unmarshal([]byte(raw), &books); err != nil {
		log.Printf("Malformed data under %q, treating as empty: %v\n", KeyBooks, err)
		return []content.Book{}, nil
	}
	return books, nil
}

func (l *Local) AddBook(book content.Book) error {
	books, err := l.Books()
	if err != nil {
		return err
	}
	return l.save(KeyBooks, append([]content.Book{book}, books...))
}

func (l *Local) DeleteBook(id int64) (bool, error) {
	books, err := l.Books()
	if err != nil {
		return false, err
	}
	kept := make([]content.Book, 0, len(books))
	removed := false
	for _, b := range books {
		if b.ID == id {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	if !removed {
		return false, nil
	}
	return true, l.save(KeyBooks, kept)
}

func (l *Local) save(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return l.kv.Set(key, string(raw))
}
