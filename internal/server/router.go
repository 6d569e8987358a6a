package server

import (
	"net/http"
	"strings"

	bidding "marketplace-bidding/internal/biddingService"
	"marketplace-bidding/internal/session"
	handler "marketplace-bidding/services/bidding/handler"
	"marketplace-bidding/utils"

	"github.com/gin-gonic/gin"
)

// multipartOverhead is the room left for multipart headers around an image
const multipartOverhead = 64 << 10

// ObjectReader serves stored objects when the object store is in-process
type ObjectReader interface {
	Get(path string) ([]byte, string, bool)
}

// Options tune the router
type Options struct {
	BidRateLimit  float64
	BidRateBurst  int
	MaxImageBytes int64
	// Objects, when set, serves uploaded images under /objects
	Objects ObjectReader
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(biddingService *bidding.BiddingService, verifier session.Verifier, opts Options) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := handler.NewBiddingHandler(biddingService)
	authenticated := SessionMiddleware(verifier, biddingService)
	bidLimiter := NewRateLimiter(opts.BidRateLimit, opts.BidRateBurst)

	router.GET("/health", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{"healthy": true}, "ok")
	})

	if opts.Objects != nil {
		router.GET("/objects/*path", func(c *gin.Context) {
			data, contentType, ok := opts.Objects.Get(strings.TrimPrefix(c.Param("path"), "/"))
			if !ok {
				c.Status(http.StatusNotFound)
				return
			}
			c.Data(http.StatusOK, contentType, data)
		})
	}

	postings := router.Group("/postings")
	{
		postings.GET("", biddingHandler.ListPostingsHandler)
		postings.GET("/:posting_id", biddingHandler.GetPostingHandler)
		postings.POST("", authenticated, biddingHandler.CreatePostingHandler)
		postings.PATCH("/:posting_id", authenticated, biddingHandler.UpdatePostingHandler)
		postings.DELETE("/:posting_id", authenticated, biddingHandler.DeletePostingHandler)
		postings.PUT("/:posting_id/image", BodyLimitMiddleware(opts.MaxImageBytes+multipartOverhead), authenticated, biddingHandler.UploadPostingImageHandler)
		postings.POST("/:posting_id/bids", authenticated, bidLimiter.Middleware(), biddingHandler.PlaceBidHandler)
		postings.GET("/:posting_id/bids", authenticated, biddingHandler.ListBidsForPostingHandler)
	}

	bids := router.Group("/bids", authenticated)
	{
		bids.GET("/mine", biddingHandler.ListMyBidsHandler)
		bids.POST("/:bid_id/accept", biddingHandler.AcceptBidHandler)
	}

	entrepreneurs := router.Group("/entrepreneurs", authenticated)
	{
		entrepreneurs.POST("/:entrepreneur_id/accept", biddingHandler.AcceptBidByEntrepreneurHandler)
	}

	notifications := router.Group("/notifications", authenticated)
	{
		notifications.GET("", biddingHandler.ListNotificationsHandler)
		notifications.GET("/unread-count", biddingHandler.UnreadCountHandler)
		notifications.POST("/:notification_id/read", biddingHandler.MarkNotificationReadHandler)
		notifications.DELETE("", biddingHandler.DeleteNotificationsHandler)
	}

	router.PUT("/profile", authenticated, biddingHandler.SaveProfileHandler)
	router.GET("/profiles/:uid", authenticated, biddingHandler.GetProfileHandler)

	categories := router.Group("/categories")
	{
		categories.GET("", biddingHandler.ListCategoriesHandler)
		categories.POST("", authenticated, biddingHandler.CreateCategoryHandler)
	}

	return router
}
