package v1

import (
	"errors"
	"io"
	"strconv"

	"github.com/acl-api/lib/i18n"
	"github.com/acl-api/lib/pagination"
	"github.com/acl-api/lib/requestctx"
	"github.com/acl-api/lib/validation"
	"github.com/acl-api/repositories"
	"github.com/acl-api/utils"
	"github.com/gin-gonic/gin"
)

// binder parses and validates request input into DTOs
type binder struct {
	translator *i18n.Translator
	validation *validation.Validation
}

func locale(c *gin.Context) string {
	return requestctx.Locale(c.Request.Context())
}

// parseID reads the :id path parameter as a positive integer
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, utils.NewBadRequest("validation.invalid_id")
	}
	return uint(id), nil
}

// bindJSON decodes the body into obj. An empty body is validated as an
// empty object so missing required fields are reported individually.
func (b binder) bindJSON(c *gin.Context, obj interface{}) error {
	err := c.ShouldBindJSON(obj)
	if errors.Is(err, io.EOF) {
		err = b.validation.Validate(obj)
	}
	if err != nil {
		return b.invalid(c, err)
	}
	return nil
}

func (b binder) bindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		return b.invalid(c, err)
	}
	return nil
}

func (b binder) invalid(c *gin.Context, err error) error {
	if fields, ok := b.validation.FieldErrors(err, locale(c)); ok {
		return utils.NewValidationError(fields)
	}
	return utils.NewUnprocessable("body", b.translator.T(locale(c), "validation.malformed_body"))
}

// listOptions normalizes the common list query parameters
func listOptions(c *gin.Context, search, page, limit, sortBy, sortOrder string) repositories.ListOptions {
	return repositories.ListOptions{
		Search:    search,
		SortBy:    sortBy,
		SortOrder: sortOrder,
		Page:      pagination.ParseNumber(page),
		Limit:     pagination.ParseNumber(limit),
		Route:     requestctx.URL(c.Request.Context()),
	}
}

// paginated renders a page of resources with a localized message
func paginated[T any](message string, result pagination.Result[T]) gin.H {
	return gin.H{
		"message": message,
		"data":    result.Data,
		"meta":    result.Meta,
		"links":   result.Links,
	}
}
