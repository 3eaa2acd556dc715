package v1

import "github.com/gin-gonic/gin"

// Controllers groups the v1 controllers mounted by RegisterRoutes
type Controllers struct {
	Users       *UserController
	Roles       *RoleController
	Permissions *PermissionController
	Modules     *ModuleController
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, controllers Controllers) {
	controllers.Users.RegisterRoutes(router)
	controllers.Roles.RegisterRoutes(router)
	controllers.Permissions.RegisterRoutes(router)
	controllers.Modules.RegisterRoutes(router)
}
