package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/acl-api/lib/i18n"
	"github.com/acl-api/lib/requestctx"
	"github.com/acl-api/utils"
	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error attached with c.Error as the
// {statusCode, message, errors?} envelope. Unknown errors are logged and
// answered with a generic 500.
func ErrorHandler(translator *i18n.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		locale := requestctx.Locale(c.Request.Context())

		var httpErr *utils.HTTPError
		if errors.As(err, &httpErr) {
			body := gin.H{
				"statusCode": httpErr.Status,
				"message":    translator.Tf(locale, httpErr.Message, httpErr.Params),
			}
			if len(httpErr.Errors) > 0 {
				body["errors"] = httpErr.Errors
			}
			c.JSON(httpErr.Status, body)
			return
		}

		log.Printf("❌ %s %s [%s]: %v", c.Request.Method, c.Request.URL.Path, c.GetString(RequestIDHeader), err)
		c.JSON(http.StatusInternalServerError, internalError(translator, locale))
	}
}

// Recovery turns panics into the 500 envelope
func Recovery(translator *i18n.Translator) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("❌ panic on %s %s [%s]: %v", c.Request.Method, c.Request.URL.Path, c.GetString(RequestIDHeader), recovered)
		locale := requestctx.Locale(c.Request.Context())
		c.AbortWithStatusJSON(http.StatusInternalServerError, internalError(translator, locale))
	})
}

// NoRoute answers unknown routes with the 404 envelope
func NoRoute(translator *i18n.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := requestctx.Locale(c.Request.Context())
		c.JSON(http.StatusNotFound, gin.H{
			"statusCode": http.StatusNotFound,
			"message": translator.Tf(locale, "errors.route_not_found", map[string]string{
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
			}),
		})
	}
}

func internalError(translator *i18n.Translator, locale string) gin.H {
	return gin.H{
		"statusCode": http.StatusInternalServerError,
		"message":    translator.T(locale, "errors.internal"),
	}
}
