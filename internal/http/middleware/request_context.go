package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/ctxutil"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/views"
)

const (
	headerClientID = "X-Client-Id"
	headerTheme    = "X-AeroSense-Theme"

	// HeaderDisclaimer goes out on every response.
	HeaderDisclaimer = "X-Medical-Disclaimer"

	appStateKey     = "app_state"
	maxClientKeyLen = 128
)

// AttachRequestContext scopes the request to the caller's client id and parses the
// UI state (theme) the front-end sends along.
func AttachRequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(headerClientID))
		if key == "" {
			key = strings.TrimSpace(c.Query("client_id"))
		}
		if len(key) > maxClientKeyLen {
			key = key[:maxClientKeyLen]
		}
		ctx := ctxutil.WithClientKey(c.Request.Context(), key)
		c.Request = c.Request.WithContext(ctx)
		tagClient(c, key)

		theme := c.GetHeader(headerTheme)
		if theme == "" {
			theme = c.Query("theme")
		}
		state := views.DefaultAppState()
		state.Theme = views.ParseTheme(theme)
		c.Set(appStateKey, state)
		c.Next()
	}
}

// AppState returns the state parsed for this request, switched to tab.
func AppState(c *gin.Context, tab views.Tab) views.AppState {
	state := views.DefaultAppState()
	if v, ok := c.Get(appStateKey); ok {
		if s, ok := v.(views.AppState); ok {
			state = s
		}
	}
	return state.WithTab(tab)
}

func Disclaimer() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header(HeaderDisclaimer, views.HeaderDisclaimer)
		c.Next()
	}
}
