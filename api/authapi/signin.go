package authapi

import (
	"net/http"

	"github.com/Rahulstark2/blogging-platform-backend/jwtauth"
	"github.com/Rahulstark2/blogging-platform-backend/log"
	"github.com/Rahulstark2/blogging-platform-backend/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// A missing user and a wrong password produce the same response,
	// so signin cannot be used to probe which emails are registered.
	user, err := models.GetUserByEmail(req.Email)
	if err != nil {
		log.Debugf("failed fetching user by email %s, %v", req.Email, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		log.Debugf("failed comparing password for user %s, %v", req.Email, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := jwtauth.Sign(&jwtauth.Claims{UserID: user.ID, Email: user.Email}, h.authCfg)
	if err != nil {
		log.Errorf("failed signing token for user=%d, err=%v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  UserResponse{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}
