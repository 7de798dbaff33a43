package content

import (
	"math"
	"strings"
	"time"

	"github.com/uniplaces/carbon"
)

// Quote is a single quotation. Locally authored quotes carry their creation
// timestamp as the id; quotes parsed from the published file have none.
type Quote struct {
	ID     int64  `json:"id,omitempty"`
	Text   string `json:"text"`
	Author string `json:"author"`
}

// DefaultQuote is shown when the published source is unreachable and the
// local store has nothing either.
var DefaultQuote = Quote{
	Text:   "Mathematics is the language in which God has written the universe.",
	Author: "Galileo Galilei",
}

type Article struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
	Excerpt  string `json:"excerpt"`
	Date     string `json:"date"`
	ReadTime int    `json:"readTime"`
}

type Book struct {
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Category    string `json:"category"`
	Year        string `json:"year"`
	Description string `json:"description"`
	Cover       string `json:"cover"`
	DriveLink   string `json:"driveLink"`
	Pages       int    `json:"pages,omitempty"`
}

const (
	excerptRunes   = 150
	wordsPerMinute = 200

	// DefaultBookCover is used when a book is added without a cover URL.
	DefaultBookCover = "cover/default-book.jpg"

	// quoteSeparator joins text and author in the published quotes file.
	quoteSeparator = " — "

	dateLayout = "January 2, 2006"
)

// NewArticle builds an article from form input. Excerpt, date and read time
// are derived once here and stored with the article, not recomputed on
// every render.
func NewArticle(title, category, body string, now time.Time) Article {
	return Article{
		ID:       now.UnixMilli(),
		Title:    title,
		Category: category,
		Content:  body,
		Excerpt:  Excerpt(body),
		Date:     carbon.NewCarbon(now).Format(dateLayout),
		ReadTime: ReadTime(body),
	}
}

func NewQuote(text, author string, now time.Time) Quote {
	return Quote{
		ID:     now.UnixMilli(),
		Text:   text,
		Author: author,
	}
}

func NewBook(title, author, category, year, description, cover, driveLink string, now time.Time) Book {
	if cover == "" {
		cover = DefaultBookCover
	}
	return Book{
		ID:          now.UnixMilli(),
		Title:       title,
		Author:      author,
		Category:    category,
		Year:        year,
		Description: description,
		Cover:       cover,
		DriveLink:   driveLink,
	}
}

// Excerpt is the first 150 characters of the body plus an ellipsis.
func Excerpt(body string) string {
	r := []rune(body)
	if len(r) > excerptRunes {
		r = r[:excerptRunes]
	}
	return string(r) + "..."
}

// ReadTime estimates reading minutes at 200 words per minute, never less
// than one minute.
func ReadTime(body string) int {
	words := len(strings.Split(body, " "))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// ParseQuoteLine splits a published "<text> — <author>" line. A line with no
// separator becomes a quote with an empty author.
func ParseQuoteLine(line string) Quote {
	if i := strings.LastIndex(line, quoteSeparator); i >= 0 {
		return Quote{
			Text:   strings.TrimSpace(line[:i]),
			Author: strings.TrimSpace(line[i+len(quoteSeparator):]),
		}
	}
	return Quote{Text: strings.TrimSpace(line)}
}

// Line renders the quote back into the published wire shape.
func (q Quote) Line() string {
	return q.Text + quoteSeparator + q.Author
}

// FormatDate renders a timestamp the way article dates are displayed.
func FormatDate(t time.Time) string {
	return carbon.NewCarbon(t).Format(dateLayout)
}
