package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetAllUsers lists every user, unpaginated.
func (h *Handler) GetAllUsers(c *gin.Context) {
	users, err := h.UserSvc.GetAllUsers(c.Request.Context())
	if err != nil {
		log.Printf("GetAllUsers [%s]: failed to retrieve users: %v", requestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// FindUser looks a user up by the "email" query parameter. A miss answers
// 200 with an empty body.
func (h *Handler) FindUser(c *gin.Context) {
	email, ok := c.GetQuery("email")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'email' is required"})
		return
	}

	user, found, err := h.UserSvc.FindUserByEmail(c.Request.Context(), email)
	if err != nil {
		log.Printf("FindUser [%s]: failed to look up user: %v", requestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}
	if !found {
		c.Status(http.StatusOK)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser removes the user with the given id. Unknown ids are not an error.
func (h *Handler) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	if err := h.UserSvc.DeleteUserByID(c.Request.Context(), id); err != nil {
		log.Printf("DeleteUser [%s]: failed to delete user %s: %v", requestID(c), id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.Status(http.StatusOK)
}
