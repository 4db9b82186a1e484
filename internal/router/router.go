package router

import (
	"projtrack/internal/config"
	"projtrack/internal/handler"
	"projtrack/internal/middleware"
	"projtrack/internal/repository"
	"projtrack/internal/service"
	"projtrack/internal/utils"
	"projtrack/pkg/lookupcache"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter wires repositories, services and handlers onto a gin engine. cache may
// be nil.
func SetupRouter(
	cfg *config.Config,
	logger *logrus.Logger,
	db *gorm.DB,
	cache *lookupcache.Cache,
) *gin.Engine {
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.RegisterValidations()

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(&cfg.CORS))

	// repositories
	uow := repository.NewUnitOfWork(db)
	userRepo := repository.NewUserRepository(db)
	deptRepo := repository.NewDepartmentRepository(db)
	techRepo := repository.NewTechnologyRepository(db)
	themeRepo := repository.NewThemeRepository(db)
	facultyRepo := repository.NewFacultyRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	linkRepo := repository.NewLinkRepository(db)

	// services
	cost := cfg.Auth.BcryptCost
	authService := service.NewAuthService(userRepo, uow, cost, logger)
	userService := service.NewUserService(userRepo, uow, cost, logger)
	deptService := service.NewDepartmentService(deptRepo, uow, cache, logger)
	techService := service.NewTechnologyService(techRepo, uow, cache, logger)
	themeService := service.NewThemeService(themeRepo, uow, cache, logger)
	facultyService := service.NewFacultyService(facultyRepo, userRepo, deptRepo, uow, cache, logger)
	studentService := service.NewStudentService(studentRepo, userRepo, deptRepo, uow, cache, logger)
	projectService := service.NewProjectService(projectRepo, userRepo, uow, cache, logger)
	linkService := service.NewLinkService(linkRepo, uow, logger)

	// handlers
	errs := handler.NewErrorResponder(cfg.Server.ExposeErrorDetails)
	authHandler := handler.NewAuthHandler(authService, errs)
	userHandler := handler.NewUserHandler(userService, errs)
	deptHandler := handler.NewDepartmentHandler(deptService, errs)
	techHandler := handler.NewTechnologyHandler(techService, errs)
	themeHandler := handler.NewThemeHandler(themeService, errs)
	facultyHandler := handler.NewFacultyHandler(facultyService, errs)
	studentHandler := handler.NewStudentHandler(studentService, errs)
	projectHandler := handler.NewProjectHandler(projectService, errs)
	linkHandler := handler.NewLinkHandler(linkService, errs)
	healthHandler := handler.NewHealthHandler(uow, cache, logger)

	r.GET("/health", healthHandler.Health)

	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)

	users := r.Group("/users")
	{
		users.GET("", userHandler.List)
		users.POST("", userHandler.Create)
		users.GET("/:user_id", userHandler.Get)
	}

	departments := r.Group("/departments")
	{
		departments.GET("", deptHandler.List)
		departments.POST("", deptHandler.Create)
		departments.GET("/names", deptHandler.Names)
	}

	technologies := r.Group("/technologies")
	{
		technologies.GET("", techHandler.List)
		technologies.POST("", techHandler.Create)
		technologies.GET("/names", techHandler.Names)
	}

	themes := r.Group("/themes")
	{
		themes.GET("", themeHandler.List)
		themes.POST("", themeHandler.Create)
		themes.GET("/names", themeHandler.Names)
	}

	faculty := r.Group("/faculty")
	{
		faculty.GET("", facultyHandler.List)
		faculty.POST("", facultyHandler.Create)
		faculty.GET("/names", facultyHandler.Names)
		faculty.GET("/by-id/:faculty_id", facultyHandler.GetByID)
		faculty.GET("/:user_id", facultyHandler.GetByUserID)
		faculty.PUT("/:user_id", facultyHandler.UpdateByUserID)
	}

	students := r.Group("/students")
	{
		students.GET("", studentHandler.List)
		students.POST("", studentHandler.Create)
		students.GET("/names", studentHandler.Names)
		students.GET("/by-id/:student_id", studentHandler.GetByID)
		students.GET("/:user_id", studentHandler.GetByUserID)
		students.PUT("/:user_id", studentHandler.UpdateByUserID)
	}

	projects := r.Group("/projects")
	{
		projects.GET("", projectHandler.List)
		projects.POST("", projectHandler.Create)
		projects.GET("/names", projectHandler.Names)
		projects.GET("/owner/:owner_id", projectHandler.ListByOwner)
		projects.GET("/:project_id", projectHandler.Get)
		projects.PUT("/:project_id", projectHandler.Update)
	}

	for _, a := range service.Associations() {
		links := r.Group("/" + a.Name())
		links.POST("", linkHandler.ReplaceByBody(a))
		links.GET("/:owner_id", linkHandler.List(a))
		links.PUT("/:owner_id", linkHandler.ReplaceByPath(a))
	}
	// superseded by PUT /student_technologies/:owner_id
	r.PUT("/"+service.StudentTechnologies.Name(), linkHandler.SwapTechnology)

	return r
}
