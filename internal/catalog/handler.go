package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// --------------------------------------------------
// Full option table for the configurator UI
// --------------------------------------------------
func (h *Handler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"base_price": h.store.BasePrice().InexactFloat64(),
		"options":    h.store.Options(),
	})
}
