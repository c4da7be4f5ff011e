package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	tollbooth_gin "github.com/didip/tollbooth_gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ramentaro/ramen-taro-api/internal/domain/contract"
	"github.com/ramentaro/ramen-taro-api/internal/handler/http/middleware"
	"github.com/ramentaro/ramen-taro-api/internal/usecase"
	usecasecontract "github.com/ramentaro/ramen-taro-api/internal/usecase/contract"
)

type Router struct {
	taggingHandler *TaggingHandler
	postHandler    *PostHandler
	tagHandler     *TagHandler
	authHandler    *AuthHandler
	siteHandler    *SiteHandler
	jwtService     usecasecontract.IJWTService
}

func NewRouter(
	suggestionUC usecase.ISuggestionUseCase,
	bulkUC usecase.IBulkTagUseCase,
	postUC usecase.IPostUseCase,
	authUC usecase.IAuthUseCase,
	tagRepo contract.ITagRepository,
	jwtService usecasecontract.IJWTService,
	logger usecasecontract.IAppLogger,
	config usecasecontract.IConfigProvider,
) *Router {
	return &Router{
		taggingHandler: NewTaggingHandler(suggestionUC, bulkUC, logger),
		postHandler:    NewPostHandler(postUC),
		tagHandler:     NewTagHandler(tagRepo),
		authHandler:    NewAuthHandler(authUC),
		siteHandler:    NewSiteHandler(postUC, config),
		jwtService:     jwtService,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(tollbooth_gin.LimitHandler(lmt))

	router.Use(middleware.RequestMetrics())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// crawler-facing site routes
	router.GET("/sitemap.xml", r.siteHandler.SitemapHandler)
	router.GET("/robots.txt", r.siteHandler.RobotsHandler)

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", r.authHandler.LoginHandler)
	}

	posts := v1.Group("/posts")
	{
		posts.GET("", r.postHandler.GetPostsHandler)
		posts.GET("/slug/:slug", r.postHandler.GetPostDetailHandler)
	}

	v1.GET("/tags", r.tagHandler.GetTagsHandler)
	v1.GET("/analyze/health", r.taggingHandler.AnalyzeHealthHandler)
	v1.GET("/tagging/bulk-status", r.taggingHandler.BulkStatusHandler)

	// Protected routes (admin authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AdminAuthMiddleware(r.jwtService))
	{
		protected.POST("/analyze-content", r.taggingHandler.AnalyzeContentHandler)
		protected.POST("/bulk-auto-tag", r.taggingHandler.BulkAutoTagHandler)
		protected.POST("/posts", r.postHandler.CreatePostHandler)
		protected.POST("/revalidate", r.taggingHandler.RevalidateHandler)
	}
}
