package middleware

import (
	"crypto/subtle"
	"net/http"

	"helio_sync/pkg"

	"github.com/gin-gonic/gin"
)

// HeaderWebhookSecret is the shared-secret header Aurora sends with every
// delivery.
const HeaderWebhookSecret = "X-Webhook-Secret"

// RequireWebhookSecret rejects deliveries whose shared-secret header does
// not match before any event processing happens. An empty configured secret
// disables the check (local development).
func RequireWebhookSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}
		got := c.GetHeader(HeaderWebhookSecret)
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid webhook secret", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
