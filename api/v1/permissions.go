package v1

import (
	"net/http"

	"github.com/acl-api/dto"
	"github.com/acl-api/lib/i18n"
	"github.com/gin-gonic/gin"
)

// PermissionController handles permission-related API endpoints
type PermissionController struct {
	permissionService PermissionService
	translator        *i18n.Translator
}

// NewPermissionController creates a new permission controller
func NewPermissionController(permissionService PermissionService, translator *i18n.Translator) *PermissionController {
	return &PermissionController{
		permissionService: permissionService,
		translator:        translator,
	}
}

// RegisterRoutes registers permission routes
func (ctl *PermissionController) RegisterRoutes(router *gin.RouterGroup) {
	permissions := router.Group("/permissions")
	{
		permissions.GET("", ctl.ListPermissions)
		permissions.GET("/:id", ctl.GetPermission)
	}
}

// ListPermissions returns every permission grouped by its module
func (ctl *PermissionController) ListPermissions(c *gin.Context) {
	modules, err := ctl.permissionService.GetPermissionsWithModule(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	groups := make([]dto.ModulePermissionsGroup, 0, len(modules))
	for _, module := range modules {
		groups = append(groups, dto.ToModulePermissionsGroup(module))
	}

	c.JSON(http.StatusOK, gin.H{
		"message": ctl.translator.T(locale(c), "permissions.collection_retrieved_successfully"),
		"data":    groups,
	})
}

// GetPermission returns a single permission
func (ctl *PermissionController) GetPermission(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	permission, err := ctl.permissionService.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    ctl.translator.T(locale(c), "permissions.retrieved_successfully"),
		"permission": dto.ToPermissionResource(*permission),
	})
}
