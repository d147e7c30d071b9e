package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fashionstore/internal/domain"
	"fashionstore/internal/service/auth"
)

func registerHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.RegisterInput
		if err := c.ShouldBindJSON(&req); err != nil {
			errorJSON(c, http.StatusBadRequest, "invalid request body")
			return
		}
		user, err := svc.Register(c.Request.Context(), req)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				errorJSON(c, http.StatusConflict, "email already registered")
				return
			}
			errorJSON(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "User registered", "user": user})
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func loginHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errorJSON(c, http.StatusBadRequest, "invalid request body")
			return
		}
		user, token, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				errorJSON(c, http.StatusUnauthorized, "invalid credentials")
				return
			}
			errorJSON(c, http.StatusInternalServerError, "login failed")
			return
		}
		c.JSON(http.StatusOK, gin.H{"access_token": token, "user": user})
	}
}

func meHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := c.MustGet(claimsCtxKey).(*auth.Claims)
		user, err := svc.Lookup(c.Request.Context(), claims)
		if err != nil {
			// A deleted account can still hold a live token.
			if errors.Is(err, auth.ErrInvalidToken) {
				errorJSON(c, http.StatusUnauthorized, "invalid token")
				return
			}
			errorJSON(c, http.StatusInternalServerError, "failed to load user")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
