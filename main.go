package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"

	"portfolio-go-app/config"
	"portfolio-go-app/internal/helpers"
	"portfolio-go-app/internal/published"
	"portfolio-go-app/internal/session"
	"portfolio-go-app/internal/store"
)

func main() {
	// Load environment variables
	helpers.LoadEnv()
	cfg := config.Load()
	log.Println("app env: " + cfg.AppEnv)

	// Set up mysql connection
	db, err := sql.Open("mysql", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Error opening database:", err)
	}
	kv := store.New(db)
	// ping database
	err = kv.GetDB().Ping()
	if err != nil {
		log.Fatal("Error pinging database:", err)
	} else {
		log.Println("Database pinged successfully.")
	}
	if err := kv.EnsureSchema(); err != nil {
		log.Fatal("Error ensuring schema:", err)
	}
	local := store.NewLocal(kv)

	// Set up redis for sessions and the published-content cache
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Error pinging redis:", err)
	}
	log.Println("Redis pinged successfully.")
	sessions := session.NewRedis(rdb, cfg.SessionTTL)

	client := published.NewClient(cfg.Published.BaseURL, cfg.Published.S3Bucket, cfg.Published.AWSRegion)
	cache := published.NewCache(client, rdb, cfg.Published.CacheTTL)

	// Keep the published cache warm, the same loop also primes it at boot.
	go func() {
		ctx := context.Background()
		for {
			if err := cache.RefreshAll(ctx); err != nil {
				log.Println("Error refreshing published content:", err)
			}
			time.Sleep(cfg.Published.RefreshInterval)
		}
	}()

	a := &api{
		cfg:      cfg,
		db:       db,
		rdb:      rdb,
		local:    local,
		source:   cache,
		sessions: sessions,
	}

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		host, _ := os.Hostname()
		c.JSON(http.StatusOK, gin.H{"hostname": host})
	})
	r.GET("/health", a.health)

	r.GET("/quote/today", a.todaysQuote)
	r.GET("/quotes", a.listQuotes)

	r.GET("/articles", a.listArticles)
	r.GET("/articles/related", a.relatedArticles)
	r.GET("/articles/view", a.viewArticle)
	r.POST("/articles/view", a.stashArticle)

	r.GET("/books", a.listBooks)
	r.GET("/books/stats", a.libraryStats)

	r.POST("/admin/login", a.login)
	r.POST("/admin/logout", a.logout)

	admin := r.Group("/", a.requireAdmin)
	admin.POST("/articles", a.createArticle)
	admin.DELETE("/articles/:id", a.deleteArticle)
	admin.POST("/quotes", a.createQuote)
	admin.DELETE("/quotes/:id", a.deleteQuote)
	admin.POST("/books", a.createBook)
	admin.DELETE("/books/:id", a.deleteBook)

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal("Error running server:", err)
	}
}
