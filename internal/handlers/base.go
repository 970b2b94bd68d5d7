// internal/handlers/base.go
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"cwdp/internal/config"
)

type BaseHandler struct {
	DB  *sql.DB
	Cfg *config.Config
}

func NewBaseHandler(db *sql.DB, cfg *config.Config) *BaseHandler {
	return &BaseHandler{
		DB:  db,
		Cfg: cfg,
	}
}

type dbHealth struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string   `json:"status"`
	Environment string   `json:"environment,omitempty"`
	DB          dbHealth `json:"db"`
}

// @Tags System
// @Summary Health check
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *BaseHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", DB: dbHealth{Status: "ok"}}
	if h.Cfg != nil {
		resp.Environment = h.Cfg.Environment
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	if h.DB == nil {
		resp.Status, resp.DB = "degraded", dbHealth{Status: "down", Error: "no database"}
		status = http.StatusServiceUnavailable
	} else if err := h.DB.PingContext(ctx); err != nil {
		resp.Status, resp.DB = "degraded", dbHealth{Status: "down", Error: err.Error()}
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}
