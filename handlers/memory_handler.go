package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/triplogue/triplogue-backend/errors"
	"github.com/triplogue/triplogue-backend/models"
	"github.com/triplogue/triplogue-backend/types"
)

// MemoryHandler serves the photo gallery and scrapbook endpoints.
type MemoryHandler struct {
	tripModel   *models.TripModel
	memoryModel *models.MemoryModel
}

func NewMemoryHandler(tripModel *models.TripModel, memoryModel *models.MemoryModel) *MemoryHandler {
	return &MemoryHandler{
		tripModel:   tripModel,
		memoryModel: memoryModel,
	}
}

func (h *MemoryHandler) scope(c *gin.Context) (tripID int64, userID string, ok bool) {
	userID, ok = requireUser(c)
	if !ok {
		return 0, "", false
	}
	tripID, ok = tripIDParam(c)
	if !ok {
		return 0, "", false
	}
	if !authorizeTrip(c, h.tripModel, tripID, userID) {
		return 0, "", false
	}
	return tripID, userID, true
}

func (h *MemoryHandler) CreatePhotoHandler(c *gin.Context) {
	tripID, userID, ok := h.scope(c)
	if !ok {
		return
	}

	var photo types.Photo
	if err := c.ShouldBindJSON(&photo); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}
	photo.TripID = tripID
	photo.CreatedBy = userID

	if err := h.memoryModel.CreatePhoto(c.Request.Context(), &photo); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, photo)
}

func (h *MemoryHandler) ListPhotosHandler(c *gin.Context) {
	tripID, _, ok := h.scope(c)
	if !ok {
		return
	}

	photos, err := h.memoryModel.ListPhotos(c.Request.Context(), tripID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

func (h *MemoryHandler) DeletePhotoHandler(c *gin.Context) {
	tripID, _, ok := h.scope(c)
	if !ok {
		return
	}
	photoID, ok := int64Param(c, "photoId")
	if !ok {
		return
	}

	h.memoryModel.DeletePhoto(c.Request.Context(), tripID, photoID)
	c.Status(http.StatusNoContent)
}

func (h *MemoryHandler) CreateScrapbookEntryHandler(c *gin.Context) {
	tripID, userID, ok := h.scope(c)
	if !ok {
		return
	}

	var entry types.ScrapbookEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}
	entry.TripID = tripID
	entry.CreatedBy = userID

	if err := h.memoryModel.CreateScrapbookEntry(c.Request.Context(), &entry); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *MemoryHandler) ListScrapbookEntriesHandler(c *gin.Context) {
	tripID, _, ok := h.scope(c)
	if !ok {
		return
	}

	entries, err := h.memoryModel.ListScrapbookEntries(c.Request.Context(), tripID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *MemoryHandler) DeleteScrapbookEntryHandler(c *gin.Context) {
	tripID, _, ok := h.scope(c)
	if !ok {
		return
	}
	entryID, ok := int64Param(c, "entryId")
	if !ok {
		return
	}

	h.memoryModel.DeleteScrapbookEntry(c.Request.Context(), tripID, entryID)
	c.Status(http.StatusNoContent)
}
