// Package requestctx carries per-request values through context.Context.
package requestctx

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const (
	urlKey    contextKey = "url"
	localeKey contextKey = "locale"
)

// WithURL returns a copy of ctx carrying the base URL of the current request
func WithURL(ctx context.Context, url string) context.Context {
	return context.WithValue(ctx, urlKey, url)
}

// URL returns the request URL stored in ctx, or "" when there is none
func URL(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	url, _ := ctx.Value(urlKey).(string)
	return url
}

// WithLocale returns a copy of ctx carrying the resolved locale
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey, locale)
}

// Locale returns the locale stored in ctx, or "" when there is none
func Locale(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	locale, _ := ctx.Value(localeKey).(string)
	return locale
}

// BaseURL rebuilds scheme://host/path for r, dropping the query string
func BaseURL(r *http.Request) string {
	if r.Host == "" {
		return ""
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}

	return scheme + "://" + r.Host + r.URL.Path
}
