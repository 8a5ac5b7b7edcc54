package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	cors "github.com/rs/cors/wrapper/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"listkit/api/handlers"
	"listkit/api/middleware"
	"listkit/db"
	_ "listkit/docs"
	"listkit/repositories"
	"listkit/services"
)

func New() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Prometheus
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	postsRepo := repositories.NewPostRepository(db.Database())

	// HTML pages
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/posts") })
	r.GET("/posts", handlers.PostsPageHandler(postsRepo))
	r.GET("/feeds", handlers.FeedsPageHandler())

	// v1 routes
	api := r.Group("/api/v1")
	{
		postsSvc := services.NewPostService(postsRepo)
		api.GET("/posts", handlers.ListPostsHandler(postsSvc))
		api.GET("/posts/:id", handlers.GetPostHandler(postsSvc))
	}

	return r
}
