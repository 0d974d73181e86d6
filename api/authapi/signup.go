package authapi

import (
	"errors"
	"net/http"

	"github.com/Rahulstark2/blogging-platform-backend/jwtauth"
	"github.com/Rahulstark2/blogging-platform-backend/log"
	"github.com/Rahulstark2/blogging-platform-backend/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Handler carries the token codec configuration shared by the signup and
// signin routes.
type Handler struct {
	authCfg *jwtauth.Config
}

func NewHandler(authCfg *jwtauth.Config) *Handler {
	return &Handler{authCfg: authCfg}
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := &models.User{
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: string(hashedPassword),
	}
	if err := models.CreateUser(user); err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
			return
		}
		log.Errorf("failed creating user, err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := jwtauth.Sign(&jwtauth.Claims{UserID: user.ID, Email: user.Email}, h.authCfg)
	if err != nil {
		log.Errorf("failed signing token for user=%d, err=%v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"token":   token,
		"user":    UserResponse{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}
