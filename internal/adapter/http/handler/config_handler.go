package handler

import (
	"net/http"

	"github.com/kiraazuma/jijiken-potato-pos/internal/adapter/http/dto"
)

// ConfigHandler exposes the stall's pricing defaults so register UIs can
// prefill their inputs.
type ConfigHandler struct {
	resp dto.RegisterConfigResponse
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(basePrice, seminarPrice, defaultSalePrice, maxItemPrice int) *ConfigHandler {
	return &ConfigHandler{
		resp: dto.RegisterConfigResponse{
			BasePrice:        basePrice,
			SeminarPrice:     seminarPrice,
			DefaultSalePrice: defaultSalePrice,
			MaxItemPrice:     maxItemPrice,
		},
	}
}

// Get returns the pricing configuration.
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.resp)
}
