package builds

import (
	"errors"
	"net/http"
	"strconv"

	"bobber/internal/pricing"

	"github.com/gin-gonic/gin"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Submit build
// --------------------------------------------------
func (h *Handler) SubmitBuild(c *gin.Context) {
	var req struct {
		Color   string  `json:"color"`
		Seat    string  `json:"seat"`
		Bars    string  `json:"bars"`
		Exhaust string  `json:"exhaust"`
		Tires   string  `json:"tires"`
		Total   float64 `json:"total"` // accepted and discarded
		Author  string  `json:"author"`
		Note    string  `json:"note"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	selection := pricing.Selection{
		Color:   req.Color,
		Seat:    req.Seat,
		Bars:    req.Bars,
		Exhaust: req.Exhaust,
		Tires:   req.Tires,
	}

	build, err := h.service.Finalize(c.Request.Context(), selection, req.Author, req.Note)
	if err != nil {
		var vErr *pricing.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save build"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"build_id": build.ID,
		"total":    build.Total,
		"currency": build.Currency,
		"message":  "Build saved",
	})
}

// --------------------------------------------------
// List recent builds
// --------------------------------------------------
func (h *Handler) ListBuilds(c *gin.Context) {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	if limit < 1 {
		limit = 1
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	records, err := h.service.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch builds"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"builds": records,
		"count":  len(records),
	})
}
