package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/emrgen/wiki/internal/model"
	"github.com/emrgen/wiki/internal/service"
)

// NewHandler creates the http handler for the entry and history services.
func NewHandler(entries *service.EntryService, history *service.HistoryService) *Handler {
	return &Handler{
		entries: entries,
		history: history,
	}
}

type Handler struct {
	entries *service.EntryService
	history *service.HistoryService
}

// Register mounts the wiki routes on the router.
func (h *Handler) Register(router *gin.Engine) {
	router.POST("/entries", h.createEntry)
	router.GET("/entries", h.listEntries)
	router.GET("/entries/:id", h.getEntry)
	router.PUT("/entries/:id", h.updateEntry)
	router.GET("/entries/:id/edits", h.getHistory)
}

func (h *Handler) createEntry(c *gin.Context) {
	var request service.CreateEntryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.entries.CreateEntry(c.Request.Context(), &request)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entryResponse(entry))
}

func (h *Handler) listEntries(c *gin.Context) {
	entries, total, err := h.entries.ListEntries(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	list := make([]gin.H, 0, len(entries))
	for _, entry := range entries {
		list = append(list, entryResponse(entry))
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": list,
		"total":   total,
	})
}

func (h *Handler) getEntry(c *gin.Context) {
	entry, err := h.entries.GetEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, entryResponse(entry))
}

func (h *Handler) updateEntry(c *gin.Context) {
	var request service.UpdateEntryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.entries.UpdateEntry(c.Request.Context(), c.Param("id"), &request)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, entryResponse(entry))
}

func (h *Handler) getHistory(c *gin.Context) {
	revisions, err := h.history.GetHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	list := make([]gin.H, 0, len(revisions))
	for _, revision := range revisions {
		ops := make([]gin.H, 0, len(revision.Diff))
		for _, op := range revision.Diff {
			ops = append(ops, gin.H{
				"op":   op.Tag.String(),
				"line": op.Line,
			})
		}

		list = append(list, gin.H{
			"modifiedBy": revision.ModifiedBy,
			"modifiedAt": formatTime(revision.ModifiedAt),
			"summary":    revision.Summary,
			"diff":       ops,
		})
	}

	c.JSON(http.StatusOK, gin.H{"edits": list})
}

func entryResponse(entry *model.Entry) gin.H {
	return gin.H{
		"id":             entry.ID,
		"title":          entry.Title,
		"content":        entry.Content,
		"version":        entry.Version,
		"createdBy":      entry.CreatedBy,
		"createdAt":      formatTime(entry.CreatedAt),
		"lastModifiedBy": entry.LastModifiedBy,
		"lastModifiedAt": formatTime(entry.LastModifiedAt),
	}
}

// timestamps cross the boundary in a sortable, timezone-unambiguous form
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrVersionMismatch):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logrus.Errorf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
	}
}
