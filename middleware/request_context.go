package middleware

import (
	"github.com/acl-api/lib/i18n"
	"github.com/acl-api/lib/requestctx"
	"github.com/gin-gonic/gin"
)

// RequestContext stores the request URL and its resolved locale in the
// request's context.Context so services and the pagination engine can
// read them without touching gin.
func RequestContext(translator *i18n.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := translator.Resolve(c.Query("lang"), c.GetHeader("Accept-Language"))

		ctx := requestctx.WithURL(c.Request.Context(), requestctx.BaseURL(c.Request))
		ctx = requestctx.WithLocale(ctx, locale)
		c.Request = c.Request.WithContext(ctx)

		c.Header("Content-Language", locale)
		c.Next()
	}
}
