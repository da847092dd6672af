package setup

import (
	"github.com/clubshub/clubshub/cmd/server"
	"github.com/clubshub/clubshub/internal/adapters/controller/http/handlers"
	"github.com/clubshub/clubshub/internal/adapters/controller/http/middlewares"
	postgresStorage "github.com/clubshub/clubshub/internal/adapters/database/postgres"
	"github.com/clubshub/clubshub/internal/domain/service"
	"github.com/clubshub/clubshub/pkg/logger"
	"github.com/clubshub/clubshub/pkg/smtp"
	"github.com/clubshub/clubshub/pkg/tokens"
	"github.com/spf13/viper"
)

// Setup wires storages, services and handlers onto the server's engine.
func Setup(srv *server.Server) error {
	userStorage := postgresStorage.NewUserStorage(srv.DB)
	clubStorage := postgresStorage.NewClubStorage(srv.DB)
	membershipStorage := postgresStorage.NewMembershipStorage(srv.DB)
	eventStorage := postgresStorage.NewEventStorage(srv.DB)
	registrationStorage := postgresStorage.NewEventRegistrationStorage(srv.DB)

	notifyLogger, err := logger.Named("notify")
	if err != nil {
		return err
	}
	clubLogger, err := logger.Named("club")
	if err != nil {
		return err
	}
	eventLogger, err := logger.Named("event")
	if err != nil {
		return err
	}

	smtpClient := smtp.NewClient(
		srv.SMTPDialer,
		viper.GetString("service.smtp.email"),
		viper.GetString("service.smtp.domain"),
	)
	notifyService := service.NewNotifyService(
		smtpClient,
		notifyLogger,
		viper.GetInt("notifications.workers"),
		viper.GetInt("notifications.queue-size"),
	)
	srv.Notify = notifyService

	tokenManager, err := tokens.NewManager(
		viper.GetString("auth.jwt-secret"),
		viper.GetDuration("auth.token-ttl"),
	)
	if err != nil {
		return err
	}

	authService := service.NewAuthService(userStorage, tokenManager, notifyService)
	userService := service.NewUserService(userStorage)
	clubService := service.NewClubService(clubLogger, clubStorage, membershipStorage, srv.Redis.Clubs, notifyService)
	membershipService := service.NewMembershipService(membershipStorage, clubStorage, notifyService)
	eventService := service.NewEventService(eventLogger, eventStorage, clubStorage, membershipStorage, registrationStorage, notifyService)
	registrationService := service.NewEventRegistrationService(registrationStorage, eventStorage, userStorage, notifyService)

	middle := middlewares.New(tokenManager, userStorage)

	authHandler := handlers.NewAuthHandler(authService)
	clubHandler := handlers.NewClubHandler(clubService, membershipService)
	eventHandler := handlers.NewEventHandler(eventService, registrationService)
	userHandler := handlers.NewUserHandler(membershipService, registrationService)
	adminHandler := handlers.NewAdminHandler(clubService, membershipService, eventService, registrationService, userService)
	healthHandler := handlers.NewHealthHandler(notifyService)

	api := srv.Engine.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middle.Auth(), authHandler.Me)
		}

		clubs := api.Group("/clubs")
		{
			clubs.GET("", clubHandler.List)
			clubs.GET("/:id", clubHandler.Get)
			clubs.POST("", middle.Auth(), middle.AdminOnly(), clubHandler.Create)
			clubs.DELETE("/:id", middle.Auth(), middle.AdminOnly(), clubHandler.Delete)
			clubs.POST("/:id/enroll", middle.Auth(), clubHandler.Enroll)
		}

		events := api.Group("/events")
		{
			events.GET("", eventHandler.List)
			events.GET("/:id", eventHandler.Get)
			events.POST("/:id/register", middle.Auth(), eventHandler.Register)
			events.DELETE("/:id", middle.Auth(), middle.AdminOnly(), eventHandler.Delete)
		}

		me := api.Group("/users/me", middle.Auth())
		{
			me.GET("/memberships", userHandler.MyMemberships)
			me.GET("/registrations", userHandler.MyRegistrations)
			me.GET("/registrations/:id/pass", userHandler.RegistrationPass)
		}

		admin := api.Group("/admin", middle.Auth(), middle.AdminOnly())
		{
			admin.PATCH("/clubs/:id/approve", adminHandler.ApproveClub)
			admin.PATCH("/member/:id/approve", adminHandler.ApproveMember)
			admin.PATCH("/member/:id/reject", adminHandler.RejectMember)
			admin.DELETE("/member/:id", adminHandler.RemoveMember)
			admin.POST("/event", adminHandler.CreateEvent)
			admin.GET("/users", adminHandler.ListUsers)
			admin.POST("/users/:id/promote", adminHandler.PromoteUser)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
			admin.GET("/memberships", adminHandler.ListMemberships)
			admin.GET("/event-registrations", adminHandler.ListEventRegistrations)
			admin.GET("/events/:id/registrations/export", adminHandler.ExportEventRegistrations)
		}
	}

	return nil
}
