package v1

import (
	"net/http"

	"github.com/acl-api/dto"
	"github.com/acl-api/lib/i18n"
	"github.com/acl-api/lib/pagination"
	"github.com/acl-api/lib/validation"
	"github.com/gin-gonic/gin"
)

// RoleController handles role-related API endpoints
type RoleController struct {
	binder
	roleService RoleService
}

// NewRoleController creates a new role controller
func NewRoleController(roleService RoleService, translator *i18n.Translator, v *validation.Validation) *RoleController {
	return &RoleController{
		binder:      binder{translator: translator, validation: v},
		roleService: roleService,
	}
}

// RegisterRoutes registers role routes
func (ctl *RoleController) RegisterRoutes(router *gin.RouterGroup) {
	roles := router.Group("/roles")
	{
		roles.GET("", ctl.ListRoles)
		roles.GET("/:id", ctl.GetRole)
		roles.POST("", ctl.CreateRole)
		roles.PUT("/:id", ctl.UpdateRole)
		roles.DELETE("/:id", ctl.DeleteRole)
	}
}

// ListRoles returns a page of roles
func (ctl *RoleController) ListRoles(c *gin.Context) {
	var query dto.ListRolesQuery
	if err := ctl.bindQuery(c, &query); err != nil {
		_ = c.Error(err)
		return
	}

	opts := listOptions(c, query.Search, query.Page, query.Limit, query.SortBy, query.SortOrder)
	result, err := ctl.roleService.GetAllPaginated(c.Request.Context(), opts)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, paginated(
		ctl.translator.T(locale(c), "roles.collection_retrieved_successfully"),
		pagination.Map(result, dto.ToRoleResource),
	))
}

// GetRole returns a single role
func (ctl *RoleController) GetRole(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	role, err := ctl.roleService.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": ctl.translator.T(locale(c), "roles.retrieved_successfully"),
		"role":    dto.ToRoleResource(*role),
	})
}

// CreateRole inserts a new role
func (ctl *RoleController) CreateRole(c *gin.Context) {
	var req dto.CreateRoleRequest
	if err := ctl.bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	role, err := ctl.roleService.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": ctl.translator.T(locale(c), "roles.created_successfully"),
		"role":    dto.ToRoleResource(*role),
	})
}

// UpdateRole applies a partial update to a role
func (ctl *RoleController) UpdateRole(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.UpdateRoleRequest
	if err := ctl.bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	role, err := ctl.roleService.Update(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": ctl.translator.T(locale(c), "roles.updated_successfully"),
		"role":    dto.ToRoleResource(*role),
	})
}

// DeleteRole removes a role
func (ctl *RoleController) DeleteRole(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := ctl.roleService.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusNoContent, gin.H{
		"message": ctl.translator.T(locale(c), "roles.deleted_successfully"),
	})
}
