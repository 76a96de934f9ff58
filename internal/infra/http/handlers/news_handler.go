package handlers

import (
	"net/http"

	"github.com/londonlets/api/internal/usecase"
)

type NewsHandler struct {
	News *usecase.MarketNewsService
}

func NewNewsHandler(news *usecase.MarketNewsService) *NewsHandler {
	return &NewsHandler{News: news}
}

func (h *NewsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.News.Get(r.Context()))
}
