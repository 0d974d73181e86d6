// Package api assembles the HTTP edge: middleware, route registration and
// the CORS policy.
package api

import (
	"net/http"
	"time"

	"github.com/Rahulstark2/blogging-platform-backend/api/authapi"
	"github.com/Rahulstark2/blogging-platform-backend/api/postapi"
	"github.com/Rahulstark2/blogging-platform-backend/jwtauth"
	"github.com/Rahulstark2/blogging-platform-backend/log"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
)

// BuildRouter wires middleware and all API routes. Post routes sit behind
// the auth gate; signup/signin are public.
func BuildRouter(authCfg *jwtauth.Config) *gin.Engine {
	zaplogger := log.Zap()

	route := gin.New()
	route.Use(ginzap.RecoveryWithZap(zaplogger, false))
	route.Use(ginzap.Ginzap(zaplogger, time.RFC3339, true))
	// https://pkg.go.dev/github.com/gin-gonic/gin#readme-don-t-trust-all-proxies
	route.SetTrustedProxies(nil)
	route.Use(CORSMiddleware())

	route.GET("/api/v1/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := route.Group("/api/v1")

	authHandler := authapi.NewHandler(authCfg)
	v1.POST("/auth/signup", authHandler.Signup)
	v1.POST("/auth/signin", authHandler.Signin)

	posts := v1.Group("/posts")
	posts.Use(jwtauth.RequireAuth(authCfg))
	{
		posts.POST("", postapi.Create)
		posts.GET("", postapi.List)
		posts.GET("/:id", postapi.Get)
		posts.PUT("/:id", postapi.Update)
		posts.DELETE("/:id", postapi.Delete)
	}

	return route
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, accept, origin")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
