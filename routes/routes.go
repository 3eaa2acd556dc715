package routes

import (
	v1 "github.com/acl-api/api/v1"
	"github.com/acl-api/config"
	"github.com/acl-api/lib/i18n"
	"github.com/acl-api/lib/validation"
	"github.com/acl-api/middleware"
	"github.com/acl-api/repositories"
	"github.com/acl-api/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup wires repositories, services and controllers onto a new engine
func Setup(cfg config.Config, db *gorm.DB, translator *i18n.Translator) (*gin.Engine, error) {
	v, err := validation.Gin(translator.Fallback())
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(
		gin.Logger(),
		middleware.RequestID(),
		middleware.RequestContext(translator),
		middleware.Recovery(translator),
		cors.New(corsConfig(cfg.CORS)),
		middleware.ErrorHandler(translator),
	)
	router.NoRoute(middleware.NoRoute(translator))

	// Public routes
	router.GET("/health", v1.HealthCheck(cfg.App.Name))

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	permissionRepo := repositories.NewPermissionRepository(db)
	moduleRepo := repositories.NewModuleRepository(db)

	// Services
	userService := services.NewUserService(userRepo, services.BcryptHasher{})
	roleService := services.NewRoleService(roleRepo)
	permissionService := services.NewPermissionService(permissionRepo)
	moduleService := services.NewModuleService(moduleRepo)

	// API routes
	api := router.Group("/api/v1")
	v1.RegisterRoutes(api, v1.Controllers{
		Users:       v1.NewUserController(userService, translator, v),
		Roles:       v1.NewRoleController(roleService, translator, v),
		Permissions: v1.NewPermissionController(permissionService, translator),
		Modules:     v1.NewModuleController(moduleService, translator, v),
	})

	return router, nil
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:     cfg.AllowedMethods,
		AllowHeaders:     cfg.AllowedHeaders,
		ExposeHeaders:    []string{middleware.RequestIDHeader, "Content-Language"},
		AllowCredentials: cfg.SupportsCredentials,
	}
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = cfg.AllowedOrigins
	return c
}
