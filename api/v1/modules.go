package v1

import (
	"net/http"

	"github.com/acl-api/dto"
	"github.com/acl-api/lib/i18n"
	"github.com/acl-api/lib/pagination"
	"github.com/acl-api/lib/validation"
	"github.com/gin-gonic/gin"
)

// ModuleController handles module-related API endpoints
type ModuleController struct {
	binder
	moduleService ModuleService
}

// NewModuleController creates a new module controller
func NewModuleController(moduleService ModuleService, translator *i18n.Translator, v *validation.Validation) *ModuleController {
	return &ModuleController{
		binder:        binder{translator: translator, validation: v},
		moduleService: moduleService,
	}
}

// RegisterRoutes registers module routes
func (ctl *ModuleController) RegisterRoutes(router *gin.RouterGroup) {
	modules := router.Group("/modules")
	{
		modules.GET("", ctl.ListModules)
		modules.GET("/:id", ctl.GetModule)
	}
}

// ListModules returns a page of modules
func (ctl *ModuleController) ListModules(c *gin.Context) {
	var query dto.ListModulesQuery
	if err := ctl.bindQuery(c, &query); err != nil {
		_ = c.Error(err)
		return
	}

	opts := listOptions(c, query.Search, query.Page, query.Limit, query.SortBy, query.SortOrder)
	result, err := ctl.moduleService.GetAllPaginated(c.Request.Context(), opts)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, paginated(
		ctl.translator.T(locale(c), "modules.collection_retrieved_successfully"),
		pagination.Map(result, dto.ToModuleResource),
	))
}

// GetModule returns a single module
func (ctl *ModuleController) GetModule(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	module, err := ctl.moduleService.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": ctl.translator.T(locale(c), "modules.retrieved_successfully"),
		"module":  dto.ToModuleResource(*module),
	})
}
