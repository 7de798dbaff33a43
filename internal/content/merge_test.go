package content

import (
	"errors"
	"testing"
)

var errUnreachable = errors.New("published source unreachable")

func TestAssembleQuotesLocalFirst(t *testing.T) {
	local := []Quote{{ID: 1, Text: "local", Author: "L"}}
	published := []Quote{{Text: "published", Author: "P"}}

	merged := AssembleQuotes(published, nil, local)

	if len(merged) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(merged))
	}
	if merged[0].Text != "local" || merged[1].Text != "published" {
		t.Errorf("expected local content first, got %q then %q", merged[0].Text, merged[1].Text)
	}
}

func TestAssembleQuotesFallbackToLocal(t *testing.T) {
	local := []Quote{{Text: "A", Author: "X"}}

	merged := AssembleQuotes(nil, errUnreachable, local)

	if len(merged) != 1 || merged[0].Text != "A" || merged[0].Author != "X" {
		t.Errorf("expected exactly the local quote, got %v", merged)
	}
}

func TestAssembleQuotesFallbackToDefault(t *testing.T) {
	merged := AssembleQuotes(nil, errUnreachable, nil)

	if len(merged) != 1 {
		t.Fatalf("expected exactly one quote, got %d", len(merged))
	}
	if merged[0] != DefaultQuote {
		t.Errorf("expected the default quote, got %v", merged[0])
	}
}

func TestAssembleQuotesDoesNotAliasLocal(t *testing.T) {
	local := []Quote{{Text: "A"}}
	merged := AssembleQuotes([]Quote{{Text: "B"}}, nil, local)

	merged[0].Text = "changed"
	if local[0].Text != "A" {
		t.Error("merging mutated the local source")
	}
}

func TestAssembleArticlesEmptyState(t *testing.T) {
	merged := AssembleArticles(nil, errUnreachable, nil)
	if merged == nil || len(merged) != 0 {
		t.Errorf("expected an explicit empty sequence, got %v", merged)
	}

	merged = AssembleArticles([]Article{}, nil, []Article{})
	if merged == nil || len(merged) != 0 {
		t.Errorf("expected an explicit empty sequence, got %v", merged)
	}
}

func TestAssembleBooksPrecedence(t *testing.T) {
	local := []Book{{ID: 2, Title: "mine"}}
	published := []Book{{Title: "theirs"}}

	merged := AssembleBooks(published, nil, local)

	if len(merged) != 2 || merged[0].Title != "mine" || merged[1].Title != "theirs" {
		t.Errorf("expected local books first, got %v", merged)
	}
}

func TestAssembleDoesNotDedup(t *testing.T) {
	same := Quote{Text: "twice", Author: "Both"}
	merged := AssembleQuotes([]Quote{same}, nil, []Quote{same})
	if len(merged) != 2 {
		t.Errorf("merging must not deduplicate, got %d quotes", len(merged))
	}
}
