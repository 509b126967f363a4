package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/triplogue/triplogue-backend/db"
	"github.com/triplogue/triplogue-backend/errors"
	"github.com/triplogue/triplogue-backend/middleware"
	"github.com/triplogue/triplogue-backend/services"
	"github.com/triplogue/triplogue-backend/types"
)

// UserHandler serves the display profile endpoints. Profiles only back
// display-name resolution; authentication lives with the external identity
// provider.
type UserHandler struct {
	userDB   *db.UserDB
	resolver *services.UserResolver
}

func NewUserHandler(userDB *db.UserDB, resolver *services.UserResolver) *UserHandler {
	return &UserHandler{
		userDB:   userDB,
		resolver: resolver,
	}
}

func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	profile, err := h.userDB.GetProfile(c.Request.Context(), userID)
	if err != nil {
		// Fall back to a profile synthesized from the token so first-time
		// users get a usable response.
		profile = &types.UserProfile{
			ID:    userID,
			Email: c.GetString(string(middleware.UserEmailKey)),
		}
	}
	c.JSON(http.StatusOK, profile)
}

type profileRequest struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

func (h *UserHandler) SaveProfileHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	profile := &types.UserProfile{
		ID:          userID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
	}
	if profile.Email == "" {
		profile.Email = c.GetString(string(middleware.UserEmailKey))
	}

	if err := h.userDB.SaveProfile(c.Request.Context(), profile); err != nil {
		_ = c.Error(errors.NewDatabaseError(err))
		return
	}
	c.JSON(http.StatusOK, profile)
}

type resolveRequest struct {
	UserIDs []string `json:"userIds" binding:"required"`
}

// ResolveNamesHandler maps a batch of user ids to display names. Unresolvable
// ids map to "Unknown" rather than failing the request.
func (h *UserHandler) ResolveNamesHandler(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}

	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	c.JSON(http.StatusOK, h.resolver.DisplayNames(c.Request.Context(), req.UserIDs))
}
