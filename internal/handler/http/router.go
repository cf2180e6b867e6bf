package http

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/didip/tollbooth_gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	usecasecontract "github.com/mikiasgoitom/Studiofolio/internal/usecase/contract"
)

type Router struct {
	galleryHandler    *GalleryHandler
	boardHandler      *BoardHandler
	aboutHandler      *AboutHandler
	engagementHandler *EngagementHandler
	config            usecasecontract.IConfigProvider
}

func NewRouter(galleryUsecase usecasecontract.IGalleryUseCase, aboutUsecase usecasecontract.IAboutUseCase, engagementUsecase usecasecontract.IEngagementUseCase, config usecasecontract.IConfigProvider) *Router {
	return &Router{
		galleryHandler:    NewGalleryHandler(galleryUsecase),
		boardHandler:      NewBoardHandler(galleryUsecase),
		aboutHandler:      NewAboutHandler(aboutUsecase),
		engagementHandler: NewEngagementHandler(engagementUsecase),
		config:            config,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     r.config.GetCORSAllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(r.config.GetRateLimitPerSecond(), &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(tollbooth_gin.LimitHandler(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) { MessageHandler(c, http.StatusOK, "ok") })

	v1 := router.Group("/api/v1")

	// Public routes
	v1.GET("/galleries/:slug/media", r.galleryHandler.PublicMedia)
	v1.GET("/about", r.aboutHandler.GetAboutPage)
	stories := v1.Group("/stories/:storyID/engagements")
	{
		stories.GET("", r.engagementHandler.ListForStory)
		stories.GET("/summary", r.engagementHandler.Summary)
		stories.POST("", r.engagementHandler.Create)
	}
	v1.PUT("/engagements/:engagementID", r.engagementHandler.Update)
	v1.DELETE("/engagements/:engagementID", r.engagementHandler.Delete)

	// Admin routes. Authentication is handled in front of the service.
	admin := v1.Group("/admin")
	{
		admin.POST("/galleries", r.galleryHandler.CreateGallery)
		admin.GET("/galleries", r.galleryHandler.ListGalleries)
		admin.GET("/galleries/:galleryID", r.galleryHandler.GetGallery)
		admin.GET("/galleries/:galleryID/media", r.galleryHandler.ListMedia)
		admin.POST("/galleries/:galleryID/media", r.galleryHandler.AddMedia)
		admin.PUT("/galleries/:galleryID/media/order", r.galleryHandler.ReorderMedia)
		admin.DELETE("/galleries/:galleryID/media/:mediaID", r.galleryHandler.DeleteMedia)

		board := admin.Group("/galleries/:galleryID/board")
		{
			board.GET("", r.boardHandler.GetBoard)
			board.POST("/press", r.boardHandler.PressStart)
			board.POST("/release", r.boardHandler.PressEnd)
			board.PUT("/edit-mode", r.boardHandler.SetEditMode)
			board.POST("/done", r.boardHandler.Done)
			board.POST("/drag/begin", r.boardHandler.BeginDrag)
			board.POST("/drag/over", r.boardHandler.DragOver)
			board.POST("/drag/end", r.boardHandler.EndDrag)
			board.POST("/delete", r.boardHandler.RequestDelete)
			board.POST("/delete/confirm", r.boardHandler.ConfirmDelete)
			board.POST("/delete/cancel", r.boardHandler.CancelDelete)
		}

		admin.PUT("/about/main", r.aboutHandler.UpdateMainDetails)
		admin.PUT("/about/meet-team", r.aboutHandler.UpdateMeetTeam)
		admin.PUT("/about/what-we-do", r.aboutHandler.UpdateWhatWeDo)
		admin.GET("/about/staff", r.aboutHandler.ListStaff)
		admin.POST("/about/staff", r.aboutHandler.AddStaff)
		admin.PUT("/about/staff/order", r.aboutHandler.ReorderStaff)
		admin.DELETE("/about/staff/:staffID", r.aboutHandler.DeleteStaff)
	}
}
