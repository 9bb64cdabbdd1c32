package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "gm_session"
	sessionMaxAge = 30 * 24 * 3600 // aligné sur le TTL Redis du panier
)

// Session attache un identifiant de session anonyme à chaque visiteur.
// Le panier et la liste d'envies sont indexés dessus ; aucune
// authentification n'est requise pour naviguer.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(SessionCookie, sessionID, sessionMaxAge, "/", "", false, true)
		}
		c.Set("session_id", sessionID)
		c.Next()
	}
}
