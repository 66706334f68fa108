package controllers

import (
	"net/http"

	"github.com/sweetdelights/cakekart-backend/api/responses"
	"github.com/sweetdelights/cakekart-backend/api/validators"
	"github.com/sweetdelights/cakekart-backend/pkg/config"
	"github.com/sweetdelights/cakekart-backend/pkg/logger"
	"github.com/sweetdelights/cakekart-backend/pkg/whatsapp"
)

type inquiryRequest struct {
	CakeName      string `json:"cake_name" validate:"required"`
	Size          string `json:"size"`
	Serves        string `json:"serves"`
	Flavor        string `json:"flavor"`
	Quantity      int    `json:"quantity" validate:"gte=0"`
	Total         int    `json:"total" validate:"gte=0"`
	CustomMessage string `json:"custom_message"`
}

// CakeInquiry builds a WhatsApp link asking the bakery about a cake. Open to
// anonymous visitors; nothing is persisted.
func CakeInquiry(bakery config.BakeryConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload inquiryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		message := whatsapp.InquiryMessage(whatsapp.InquiryParams{
			CakeName:      validators.SanitizeString(payload.CakeName, 200),
			Size:          validators.SanitizeString(payload.Size, 100),
			Serves:        validators.SanitizeString(payload.Serves, 100),
			Flavor:        validators.SanitizeString(payload.Flavor, 100),
			Quantity:      payload.Quantity,
			Total:         payload.Total,
			CustomMessage: validators.SanitizeString(payload.CustomMessage, 500),
		})
		responses.WriteSuccess(w, map[string]string{
			"whatsapp_url": whatsapp.Link(bakery.InquiryPhone, message),
		})
	}
}
