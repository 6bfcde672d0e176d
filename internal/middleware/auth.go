package middleware

import (
	"net/http"
	"strings"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const viewerKey = "viewer"

type TokenParser interface {
	ParseToken(token string) (*domain.Viewer, error)
}

func bearerToken(c *ginext.Context) string {
	header := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}
	return ""
}

// Authenticate resolves the bearer token into a viewer when one is
// present, without rejecting anonymous requests. Role-scoped read
// endpoints use it to shape their projection.
func Authenticate(parser TokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if token := bearerToken(c); token != "" {
			if viewer, err := parser.ParseToken(token); err == nil {
				c.Set(viewerKey, viewer)
			}
		}

		c.Next()
	}
}

// RequireAuth rejects requests that carry no valid token.
func RequireAuth(parser TokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrUnauthenticated.Error()})
			return
		}

		viewer, err := parser.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrUnauthenticated.Error()})
			return
		}

		c.Set(viewerKey, viewer)
		c.Next()
	}
}

// RequireAdmin runs after RequireAuth and rejects non-admin viewers.
func RequireAdmin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if !Viewer(c).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": domain.ErrForbidden.Error()})
			return
		}

		c.Next()
	}
}

// Viewer returns the authenticated caller, or nil for anonymous
// requests.
func Viewer(c *ginext.Context) *domain.Viewer {
	if v, ok := c.Get(viewerKey); ok {
		if viewer, ok := v.(*domain.Viewer); ok {
			return viewer
		}
	}
	return nil
}
