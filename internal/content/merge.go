package content

// The assemble functions combine the two content sources into the one
// sequence the renderer displays. Local items always precede published
// items. A failed fetch of the published source is recoverable: the view
// falls back to local content, and for quotes to the built-in default.
// Nothing here mutates or aliases the input slices, and nothing
// deduplicates: the same item arriving from both sources appears twice.

// AssembleQuotes merges the published and local quote sets.
func AssembleQuotes(published []Quote, fetchErr error, local []Quote) []Quote {
	if fetchErr != nil {
		if len(local) > 0 {
			return append([]Quote(nil), local...)
		}
		return []Quote{DefaultQuote}
	}
	merged := make([]Quote, 0, len(local)+len(published))
	merged = append(merged, local...)
	merged = append(merged, published...)
	return merged
}

// AssembleArticles merges the published and local article sets. An empty
// result is the empty-state signal, not an error.
func AssembleArticles(published []Article, fetchErr error, local []Article) []Article {
	if fetchErr != nil {
		return append([]Article{}, local...)
	}
	merged := make([]Article, 0, len(local)+len(published))
	merged = append(merged, local...)
	merged = append(merged, published...)
	return merged
}

// AssembleBooks merges the published and local book sets.
func AssembleBooks(published []Book, fetchErr error, local []Book) []Book {
	if fetchErr != nil {
		return append([]Book{}, local...)
	}
	merged := make([]Book, 0, len(local)+len(published))
	merged = append(merged, local...)
	merged = append(merged, published...)
	return merged
}
