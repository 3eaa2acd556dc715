package v1

import (
	"net/http"

	"github.com/acl-api/dto"
	"github.com/acl-api/lib/i18n"
	"github.com/acl-api/lib/pagination"
	"github.com/acl-api/lib/validation"
	"github.com/gin-gonic/gin"
)

// UserController handles user-related API endpoints
type UserController struct {
	binder
	userService UserService
}

// NewUserController creates a new user controller
func NewUserController(userService UserService, translator *i18n.Translator, v *validation.Validation) *UserController {
	return &UserController{
		binder:      binder{translator: translator, validation: v},
		userService: userService,
	}
}

// RegisterRoutes registers user routes
func (ctl *UserController) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", ctl.ListUsers)
		users.GET("/:id", ctl.GetUser)
		users.POST("", ctl.CreateUser)
		users.PUT("/:id", ctl.UpdateUser)
		users.DELETE("/:id", ctl.DeleteUser)
	}
}

// ListUsers returns a page of users
func (ctl *UserController) ListUsers(c *gin.Context) {
	var query dto.ListUsersQuery
	if err := ctl.bindQuery(c, &query); err != nil {
		_ = c.Error(err)
		return
	}

	opts := listOptions(c, query.Search, query.Page, query.Limit, query.SortBy, query.SortOrder)
	result, err := ctl.userService.GetAllPaginated(c.Request.Context(), opts)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, paginated(
		ctl.translator.T(locale(c), "users.collection_retrieved_successfully"),
		pagination.Map(result, dto.ToUserResource),
	))
}

// GetUser returns a single user
func (ctl *UserController) GetUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	user, err := ctl.userService.FindOrFail(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": ctl.translator.T(locale(c), "users.retrieved_successfully"),
		"user":    dto.ToUserResource(*user),
	})
}

// CreateUser registers a new user
func (ctl *UserController) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctl.bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := ctl.userService.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": ctl.translator.T(locale(c), "users.created_successfully"),
		"user":    dto.ToUserResource(*user),
	})
}

// UpdateUser applies a partial update to a user
func (ctl *UserController) UpdateUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.UpdateUserRequest
	if err := ctl.bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := ctl.userService.Update(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": ctl.translator.T(locale(c), "users.updated_successfully"),
		"user":    dto.ToUserResource(*user),
	})
}

// DeleteUser soft deletes a user
func (ctl *UserController) DeleteUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := ctl.userService.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusNoContent, gin.H{
		"message": ctl.translator.T(locale(c), "users.deleted_successfully"),
	})
}
