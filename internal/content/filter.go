package content

import "strings"

// Filtering and searching are pure functions over an assembled sequence.
// They return fresh slices so the caller can keep the full merged set
// around and re-filter it as often as it likes.

// FilterArticles keeps the articles in the given category. An empty
// category or "all" returns a copy of the full set.
func FilterArticles(articles []Article, category string) []Article {
	if category == "" || category == "all" {
		return append([]Article{}, articles...)
	}
	out := make([]Article, 0)
	for _, a := range articles {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// FilterBooks keeps the books in the given category.
func FilterBooks(books []Book, category string) []Book {
	if category == "" || category == "all" {
		return append([]Book{}, books...)
	}
	out := make([]Book, 0)
	for _, b := range books {
		if b.Category == category {
			out = append(out, b)
		}
	}
	return out
}

// SearchBooks matches the query case-insensitively against title, author,
// description and category.
func SearchBooks(books []Book, query string) []Book {
	q := strings.ToLower(query)
	out := make([]Book, 0)
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q) ||
			strings.Contains(strings.ToLower(b.Description), q) ||
			strings.Contains(strings.ToLower(b.Category), q) {
			out = append(out, b)
		}
	}
	return out
}

// SearchArticles matches the query case-insensitively against title,
// category and body.
func SearchArticles(articles []Article, query string) []Article {
	q := strings.ToLower(query)
	out := make([]Article, 0)
	for _, a := range articles {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Category), q) ||
			strings.Contains(strings.ToLower(a.Content), q) {
			out = append(out, a)
		}
	}
	return out
}

// RelatedArticles picks up to limit articles to show under the reader:
// same-category articles first, then anything else. The current article is
// matched by id, never by position.
func RelatedArticles(all []Article, current Article, limit int) []Article {
	related := make([]Article, 0, limit)
	for _, a := range all {
		if len(related) == limit {
			return related
		}
		if a.ID != current.ID && a.Category == current.Category {
			related = append(related, a)
		}
	}
	for _, a := range all {
		if len(related) == limit {
			return related
		}
		if a.ID != current.ID && a.Category != current.Category {
			related = append(related, a)
		}
	}
	return related
}

// LibraryStats is the summary block shown at the top of the library page.
type LibraryStats struct {
	TotalBooks      int `json:"totalBooks"`
	TotalCategories int `json:"totalCategories"`
	TotalPages      int `json:"totalPages"`
}

// StatsFor summarizes an assembled book set.
func StatsFor(books []Book) LibraryStats {
	categories := make(map[string]bool)
	pages := 0
	for _, b := range books {
		categories[b.Category] = true
		pages += b.Pages
	}
	return LibraryStats{
		TotalBooks:      len(books),
		TotalCategories: len(categories),
		TotalPages:      pages,
	}
}

// BookCategories lists the distinct categories in order of first
// appearance, for building the filter buttons.
func BookCategories(books []Book) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, b := range books {
		if !seen[b.Category] {
			seen[b.Category] = true
			out = append(out, b.Category)
		}
	}
	return out
}
