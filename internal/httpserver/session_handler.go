package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasklist/internal/auth"
)

func (s *Server) login(c *gin.Context) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&creds); err != nil || creds.Username == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Missing credentials"})
		return
	}

	identity, token, err := s.sessions.Login(c.Request.Context(), creds.Username, creds.Password)
	switch {
	case errors.Is(err, auth.ErrUserNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Incorrect username."})
	case errors.Is(err, auth.ErrInvalidPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Incorrect password."})
	case err != nil:
		log.Printf("login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "login failed"})
	default:
		c.SetCookie(sessionCookie, token, int(s.cfg.SessionTTL.Seconds()), "/", "", false, true)
		c.JSON(http.StatusOK, identity.Username)
	}
}

func (s *Server) logout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookie); err == nil {
		if err := s.sessions.Logout(c.Request.Context(), token); err != nil {
			log.Printf("logout: %v", err)
		}
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}
