package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/legalbook-api/internal/middleware"
	"github.com/harentsoaR/legalbook-api/internal/services"
)

// Handler groups the HTTP endpoints and the services they call.
type Handler struct {
	UserSvc *services.UserService
}

func NewHandler(userSvc *services.UserService) *Handler {
	return &Handler{
		UserSvc: userSvc,
	}
}

// CheckHealth is the liveness endpoint.
func (h *Handler) CheckHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Server is running"})
}

func requestID(c *gin.Context) string {
	return c.GetString(middleware.RequestIDKey)
}
