package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/volunteer-api/consts"
	"github.com/bitmark-inc/volunteer-api/geo"
	"github.com/bitmark-inc/volunteer-api/logmodule"
	"github.com/bitmark-inc/volunteer-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.VolunteerCore

	// JWT shared secret of the authentication service
	jwtSecret []byte

	// resolves the city of a location when a client omits it
	cityResolver geo.CityResolver

	pageSize       int
	allowedOrigins []string
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	jwtSecret []byte,
	cityResolver geo.CityResolver) *Server {
	pageSize := viper.GetInt("paging.page_size")
	if pageSize <= 0 {
		pageSize = consts.DEFAULT_PAGE_SIZE
	}

	return &Server{
		store:          store.NewVolunteerStore(ormDB),
		jwtSecret:      jwtSecret,
		cityResolver:   cityResolver,
		pageSize:       pageSize,
		allowedOrigins: viper.GetStringSlice("cors.allowed_origins"),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	if len(s.allowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     s.allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	apiRoute.GET("/information", s.information)
	apiRoute.GET("/services", s.listServices)
	apiRoute.GET("/cities", s.listCities)
	apiRoute.GET("/tickets", s.listTickets)
	apiRoute.GET("/tickets/:ticketID", s.getTicket)
	apiRoute.GET("/volunteer-profiles", s.listProfiles)
	apiRoute.GET("/volunteer-profiles/:profileID", s.getProfile)

	// api route other than the public listings will apply the following middleware
	apiRoute.Use(s.authMiddleware())

	ticketRoute := apiRoute.Group("/tickets")
	{
		ticketRoute.POST("", s.createTicket)
		ticketRoute.PUT("/:ticketID", s.updateTicket)
		ticketRoute.DELETE("/:ticketID", s.deleteTicket)
		ticketRoute.PUT("/:ticketID/services", s.setTicketServices)
		ticketRoute.POST("/:ticketID/cancel", s.cancelTicket)
		ticketRoute.POST("/:ticketID/finish", s.finishTicket)
	}

	profileRoute := apiRoute.Group("/volunteer-profiles")
	{
		profileRoute.POST("", s.createProfile)
		profileRoute.PUT("/:profileID", s.updateProfile)
		profileRoute.PUT("/:profileID/services", s.setProfileServices)
	}

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.GET("/me/volunteer-profile", s.myProfile)
	}

	reviewRoute := apiRoute.Group("/reviews")
	{
		reviewRoute.POST("", s.addReview)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/services", s.createService)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version":   viper.GetString("server.version"),
				"page_size": s.pageSize,
			},
			"system_version": "Volunteer 0.1",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
