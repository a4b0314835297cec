package handlers

import (
	"net/http"

	"github.com/abirabbas/portfolio-api/internal/api"
	"github.com/abirabbas/portfolio-api/internal/portfolio"
)

type PortfolioHandler struct{}

func NewPortfolioHandler() *PortfolioHandler {
	return &PortfolioHandler{}
}

// Get serves one portfolio section, defaulting to the full dataset.
func (h *PortfolioHandler) Get(w http.ResponseWriter, r *http.Request) {
	section := r.URL.Query().Get("section")
	if section == "" {
		section = "all"
	}

	data, err := portfolio.Section(section)
	if err != nil {
		api.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	api.Success(w, http.StatusOK, data)
}
