package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const UserBasePath = "/api/user"

type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// UserRoutes is the route table of the user API, relative to UserBasePath.
func (h *Handler) UserRoutes() []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/getAllUsers", Handler: h.GetAllUsers},
		{Method: http.MethodGet, Path: "/findUser", Handler: h.FindUser},
		{Method: http.MethodDelete, Path: "/deleteUser/:id", Handler: h.DeleteUser},
	}
}

// RegisterRoutes mounts the health check and the user route table on r.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.CheckHealth)

	userRoutes := r.Group(UserBasePath)
	for _, route := range h.UserRoutes() {
		userRoutes.Handle(route.Method, route.Path, route.Handler)
	}
}
