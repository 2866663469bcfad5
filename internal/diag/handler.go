package diag

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Report is what a store prober found out about its backend.
type Report struct {
	Status           string
	ConnectionStatus string
	Collections      []string
}

// Prober checks whether the configured build store is reachable.
type Prober interface {
	Probe(ctx context.Context) Report
}

type Handler struct {
	prober Prober
}

// NewHandler accepts a nil prober, which means no database was
// configured at startup.
func NewHandler(prober Prober) *Handler {
	return &Handler{prober: prober}
}

// --------------------------------------------------
// Database status probe
// --------------------------------------------------
func (h *Handler) DatabaseStatus(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.prober != nil {
		report := h.prober.Probe(c.Request.Context())

		response["database"] = report.Status
		response["connection_status"] = report.ConnectionStatus
		if report.Collections != nil {
			response["collections"] = report.Collections
		}
	}

	response["database_url"] = envStatus("DATABASE_URL")
	response["database_name"] = envStatus("DATABASE_NAME")

	c.JSON(http.StatusOK, response)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}
