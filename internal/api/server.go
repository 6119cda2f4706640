package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/zonefest/zonefest-api/docs"
	v1 "github.com/zonefest/zonefest-api/internal/api/handler/v1"
	"github.com/zonefest/zonefest-api/internal/api/middleware"
	"github.com/zonefest/zonefest-api/internal/config"
	"github.com/zonefest/zonefest-api/internal/repository"
	"github.com/zonefest/zonefest-api/internal/repository/dao"
	"github.com/zonefest/zonefest-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	orgHandler := s.initOrganizationHandler(db)
	userHandler := s.initUserHandler(db)
	eventHandler := s.initEventHandler(db)
	registrationHandler := s.initRegistrationHandler(db)
	resultHandler := s.initResultHandler(db)
	leaderboardHandler := s.initLeaderboardHandler(db)
	exportHandler := s.initExportHandler(db)
	s.MountHandlers(authHandler, orgHandler, userHandler, eventHandler, registrationHandler, resultHandler, leaderboardHandler, exportHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	repo := repository.NewOrganizationRepository(dao.NewOrganizationDAO(db))
	svc := service.NewAuthService(repo)

	return v1.NewAuthHandler(s.Config.API, svc)
}

func (s *Server) initOrganizationHandler(db *gorm.DB) *v1.OrganizationHandler {
	repo := repository.NewOrganizationRepository(dao.NewOrganizationDAO(db))
	svc := service.NewOrganizationService(repo)

	return v1.NewOrganizationHandler(svc)
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewUserService(repo, s.Config.Zone.IDPrefix)

	return v1.NewUserHandler(svc)
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	repo := repository.NewEventRepository(dao.NewEventDAO(db))
	svc := service.NewEventService(repo)

	return v1.NewEventHandler(svc)
}

func (s *Server) initRegistrationHandler(db *gorm.DB) *v1.RegistrationHandler {
	repo := repository.NewRegistrationRepository(dao.NewRegistrationDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewRegistrationService(repo, eventRepo, userRepo)

	return v1.NewRegistrationHandler(svc)
}

func (s *Server) initResultHandler(db *gorm.DB) *v1.ResultHandler {
	repo := repository.NewResultRepository(dao.NewResultDAO(db))
	leaderboardRepo := repository.NewLeaderboardRepository(dao.NewLeaderboardDAO(db), dao.NewCounterDAO(db))
	leaderboardSvc := service.NewLeaderboardService(leaderboardRepo)
	svc := service.NewResultService(repo, leaderboardRepo, leaderboardSvc)

	return v1.NewResultHandler(svc)
}

func (s *Server) initLeaderboardHandler(db *gorm.DB) *v1.LeaderboardHandler {
	repo := repository.NewLeaderboardRepository(dao.NewLeaderboardDAO(db), dao.NewCounterDAO(db))
	svc := service.NewLeaderboardService(repo)

	return v1.NewLeaderboardHandler(svc)
}

func (s *Server) initExportHandler(db *gorm.DB) *v1.ExportHandler {
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	orgRepo := repository.NewOrganizationRepository(dao.NewOrganizationDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	svc := service.NewExportService(userRepo, orgRepo, eventRepo, s.Config.Zone)

	return v1.NewExportHandler(svc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	orgHandler *v1.OrganizationHandler,
	userHandler *v1.UserHandler,
	eventHandler *v1.EventHandler,
	registrationHandler *v1.RegistrationHandler,
	resultHandler *v1.ResultHandler,
	leaderboardHandler *v1.LeaderboardHandler,
	exportHandler *v1.ExportHandler,
) {
	const basePath = "/api/v1"

	authenticated := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()
	adminOnly := middleware.RequireAdmin()

	// Public display surface: recorded results and the leaderboard.
	public := s.Router.Group(basePath)
	{
		public.POST("/auth/login", authHandler.HandleLogin)
		public.GET("/results", resultHandler.HandleListResults)
		public.GET("/results/by-college", resultHandler.HandleResultsByCollege)
		public.GET("/results/top-scorers", resultHandler.HandleDetailedGenderTopScorers)
		public.GET("/events/:eventID/result", resultHandler.HandleGetResultByEvent)
		public.GET("/leaderboard", leaderboardHandler.HandleGetLeaderboard)
	}

	private := s.Router.Group(basePath, authenticated)
	{
		private.GET("/organizations", orgHandler.HandleListColleges)
		private.GET("/organizations/:orgID", orgHandler.HandleGetOrganization)

		private.POST("/users", userHandler.HandleCreateUser)
		private.GET("/users", userHandler.HandleListUsers)
		private.GET("/users/:userID", userHandler.HandleGetUser)
		private.PUT("/users/:userID", userHandler.HandleUpdateUser)
		private.DELETE("/users/:userID", userHandler.HandleDeleteUser)
		private.GET("/users/:userID/registrations", registrationHandler.HandleListRegistrationsByParticipant)

		private.GET("/event-types", eventHandler.HandleListEventTypes)
		private.GET("/event-types/:typeID", eventHandler.HandleGetEventType)
		private.GET("/events", eventHandler.HandleListEvents)
		private.GET("/events/categories", eventHandler.HandleListResultCategories)
		private.GET("/events/:eventID", eventHandler.HandleGetEvent)
		private.GET("/events/:eventID/registrations", registrationHandler.HandleListRegistrationsByEvent)

		private.POST("/registrations", registrationHandler.HandleCreateRegistration)
		private.GET("/registrations", registrationHandler.HandleListRegistrations)
		private.GET("/registrations/:registrationID", registrationHandler.HandleGetRegistration)
		private.PUT("/registrations/:registrationID", registrationHandler.HandleUpdateRegistration)
		private.DELETE("/registrations/:registrationID", registrationHandler.HandleDeleteRegistration)

		private.GET("/results/:resultID", resultHandler.HandleGetResult)

		private.GET("/organizations/:orgID/exports/cards", exportHandler.HandleParticipantCards)
		private.GET("/exports/program", exportHandler.HandleEventProgram)
	}

	admin := s.Router.Group(basePath, authenticated, adminOnly)
	{
		admin.POST("/auth/signup", authHandler.HandleSignup)
		admin.PUT("/organizations/:orgID", orgHandler.HandleUpdateOrganization)
		admin.DELETE("/organizations/:orgID", orgHandler.HandleDeleteOrganization)

		admin.POST("/event-types", eventHandler.HandleCreateEventType)
		admin.PUT("/event-types/:typeID", eventHandler.HandleUpdateEventType)
		admin.DELETE("/event-types/:typeID", eventHandler.HandleDeleteEventType)
		admin.POST("/events", eventHandler.HandleCreateEvent)
		admin.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
		admin.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)

		admin.POST("/results", resultHandler.HandleCreateResult)
		admin.PUT("/results/:resultID", resultHandler.HandleUpdateResult)
		admin.DELETE("/results/:resultID", resultHandler.HandleDeleteResult)

		admin.POST("/leaderboard/refresh", leaderboardHandler.HandleRefreshLeaderboard)
		admin.GET("/exports/participants", exportHandler.HandleParticipantsWorkbook)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Zone Festival API"
	docs.SwaggerInfo.Description = "Event, registration, result and leaderboard management for a zonal arts festival."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
