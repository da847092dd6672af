package server

import (
	"time"

	"github.com/clubshub/clubshub/internal/adapters/config"
	redisStorage "github.com/clubshub/clubshub/internal/adapters/database/redis"
	"github.com/clubshub/clubshub/internal/domain/service"
	"github.com/clubshub/clubshub/pkg/logger"
	"github.com/clubshub/clubshub/pkg/logger/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// Server bundles the HTTP engine with the shared infrastructure handles
// the route setup wires into services.
type Server struct {
	Engine     *gin.Engine
	DB         *gorm.DB
	Redis      *redisStorage.Client
	SMTPDialer *gomail.Dialer
	Logger     *types.Logger

	// Notify is set during route setup; Start drains it on shutdown.
	Notify *service.NotifyService
}

func New(cfg *config.Config) (*Server, error) {
	serverLogger, err := logger.Named("server")
	if err != nil {
		return nil, err
	}

	if !viper.GetBool("settings.debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     viper.GetStringSlice("http.allowed-origins"),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	return &Server{
		Engine:     engine,
		DB:         cfg.Database,
		Redis:      cfg.Redis,
		SMTPDialer: cfg.SMTPDialer,
		Logger:     serverLogger,
	}, nil
}

func (s *Server) Start() error {
	port := viper.GetString("http.port")
	if port == "" {
		port = "8080"
	}

	s.Logger.Infof("ClubsHub API listening on :%s", port)
	err := s.Engine.Run(":" + port)

	if s.Notify != nil {
		s.Notify.Close()
	}
	return err
}
