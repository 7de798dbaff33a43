package main

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"portfolio-go-app/config"
	"portfolio-go-app/internal/content"
	"portfolio-go-app/internal/published"
	"portfolio-go-app/internal/session"
	"portfolio-go-app/internal/store"
)

const adminTokenHeader = "X-Admin-Token"

const relatedLimit = 3

type api struct {
	cfg      config.AppConfig
	db       *sql.DB
	rdb      *redis.Client
	local    *store.Local
	source   published.Source
	sessions session.Store
}

func (a *api) health(c *gin.Context) {
	healthy := true
	if err := a.db.Ping(); err != nil {
		log.Println("Database health check failed:", err)
		healthy = false
	}
	if err := a.rdb.Ping(c.Request.Context()).Err(); err != nil {
		log.Println("Redis health check failed:", err)
		healthy = false
	}
	c.JSON(http.StatusOK, gin.H{"healthy": healthy})
}

// assembledQuotes is the full merged quote set, with the fallback rules
// applied. Local store errors degrade to published-only content, they never
// fail the request.
func (a *api) assembledQuotes(c *gin.Context) []content.Quote {
	local, err := a.local.Quotes()
	if err != nil {
		log.Println("Error reading local quotes:", err)
		local = nil
	}
	pub, fetchErr := a.source.Quotes(c.Request.Context())
	if fetchErr != nil {
		log.Println("Error loading published quotes:", fetchErr)
	}
	return content.AssembleQuotes(pub, fetchErr, local)
}

func (a *api) assembledArticles(c *gin.Context) []content.Article {
	local, err := a.local.Articles()
	if err != nil {
		log.Println("Error reading local articles:", err)
		local = nil
	}
	pub, fetchErr := a.source.Articles(c.Request.Context())
	if fetchErr != nil {
		log.Println("Error loading published articles:", fetchErr)
	}
	return content.AssembleArticles(pub, fetchErr, local)
}

func (a *api) assembledBooks(c *gin.Context) []content.Book {
	local, err := a.local.Books()
	if err != nil {
		log.Println("Error reading local books:", err)
		local = nil
	}
	pub, fetchErr := a.source.Books(c.Request.Context())
	if fetchErr != nil {
		log.Println("Error loading published books:", fetchErr)
	}
	return content.AssembleBooks(pub, fetchErr, local)
}

func (a *api) todaysQuote(c *gin.Context) {
	quotes := a.assembledQuotes(c)
	quote, ok := content.SelectDaily(quotes, time.Now())
	if !ok {
		c.JSON(http.StatusOK, gin.H{"quote": nil, "date": content.FormatDate(time.Now())})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote": quote, "date": content.FormatDate(time.Now())})
}

func (a *api) listQuotes(c *gin.Context) {
	quotes := a.assembledQuotes(c)
	c.JSON(http.StatusOK, gin.H{"quotes": quotes})
}

func (a *api) listArticles(c *gin.Context) {
	articles := a.assembledArticles(c)
	if category := c.Query("category"); category != "" {
		articles = content.FilterArticles(articles, category)
	}
	if q := c.Query("q"); q != "" {
		articles = content.SearchArticles(articles, q)
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func (a *api) relatedArticles(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	articles := a.assembledArticles(c)
	for _, article := range articles {
		if article.ID == id {
			c.JSON(http.StatusOK, gin.H{"articles": content.RelatedArticles(articles, article, relatedLimit)})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
}

func (a *api) listBooks(c *gin.Context) {
	books := a.assembledBooks(c)
	if category := c.Query("category"); category != "" {
		books = content.FilterBooks(books, category)
	}
	if q := c.Query("q"); q != "" {
		books = content.SearchBooks(books, q)
	}
	c.JSON(http.StatusOK, gin.H{"books": books})
}

func (a *api) libraryStats(c *gin.Context) {
	books := a.assembledBooks(c)
	c.JSON(http.StatusOK, gin.H{
		"stats":      content.StatsFor(books),
		"categories": content.BookCategories(books),
	})
}

// stashArticle stores the article the reader clicked so the reading page
// can pick it up after navigation.
func (a *api) stashArticle(c *gin.Context) {
	var article content.Article
	if err := c.ShouldBindJSON(&article); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article"})
		return
	}
	if err := a.sessions.PutArticle(c.Request.Context(), article); err != nil {
		log.Println("Error stashing article:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not stash article"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stored": true})
}

// viewArticle hands the stashed article over exactly once. A second read
// comes back empty.
func (a *api) viewArticle(c *gin.Context) {
	article, ok, err := a.sessions.TakeArticle(c.Request.Context())
	if err != nil {
		log.Println("Error taking stashed article:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read stashed article"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article Not Found"})
		return
	}
	c.JSON(http.StatusOK, article)
}

type articleForm struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

func (a *api) createArticle(c *gin.Context) {
	var form articleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all fields"})
		return
	}
	article := content.NewArticle(strings.TrimSpace(form.Title), form.Category, strings.TrimSpace(form.Content), time.Now())
	if err := a.local.AddArticle(article); err != nil {
		log.Println("Error saving article:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save article"})
		return
	}
	c.JSON(http.StatusCreated, article)
}

func (a *api) deleteArticle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	removed, err := a.local.DeleteArticle(id)
	if err != nil {
		log.Println("Error deleting article:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete article"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

type quoteForm struct {
	Text   string `json:"text" binding:"required"`
	Author string `json:"author" binding:"required"`
}

func (a *api) createQuote(c *gin.Context) {
	var form quoteForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all fields"})
		return
	}
	quote := content.NewQuote(strings.TrimSpace(form.Text), strings.TrimSpace(form.Author), time.Now())
	if err := a.local.AddQuote(quote); err != nil {
		log.Println("Error saving quote:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save quote"})
		return
	}
	c.JSON(http.StatusCreated, quote)
}

func (a *api) deleteQuote(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	removed, err := a.local.DeleteQuote(id)
	if err != nil {
		log.Println("Error deleting quote:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete quote"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "quote not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

type bookForm struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Year        string `json:"year" binding:"required"`
	Description string `json:"description" binding:"required"`
	Cover       string `json:"cover"`
	DriveLink   string `json:"driveLink" binding:"required"`
}

func (a *api) createBook(c *gin.Context) {
	var form bookForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all required fields"})
		return
	}
	book := content.NewBook(
		strings.TrimSpace(form.Title),
		strings.TrimSpace(form.Author),
		form.Category,
		strings.TrimSpace(form.Year),
		strings.TrimSpace(form.Description),
		strings.TrimSpace(form.Cover),
		strings.TrimSpace(form.DriveLink),
		time.Now(),
	)
	if err := a.local.AddBook(book); err != nil {
		log.Println("Error saving book:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save book"})
		return
	}
	c.JSON(http.StatusCreated, book)
}

func (a *api) deleteBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	removed, err := a.local.DeleteBook(id)
	if err != nil {
		log.Println("Error deleting book:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete book"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

type loginForm struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// login is a plain credential comparison. It gates the authoring endpoints
// of this instance, nothing more.
func (a *api) login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all fields"})
		return
	}
	if form.Username != a.cfg.Admin.Username || form.Password != a.cfg.Admin.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}
	token, err := a.sessions.CreateToken(c.Request.Context())
	if err != nil {
		log.Println("Error creating admin session:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "message": "Welcome, Admin!"})
}

func (a *api) logout(c *gin.Context) {
	if err := a.sessions.DeleteToken(c.Request.Context(), c.GetHeader(adminTokenHeader)); err != nil {
		log.Println("Error deleting admin session:", err)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (a *api) requireAdmin(c *gin.Context) {
	ok, err := a.sessions.CheckToken(c.Request.Context(), c.GetHeader(adminTokenHeader))
	if err != nil {
		log.Println("Error checking admin session:", err)
	}
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin login required"})
		return
	}
	c.Next()
}
