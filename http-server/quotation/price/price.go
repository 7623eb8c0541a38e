package price

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"quotation-golang/internal/service/pricing"
	"quotation-golang/internal/service/quotation"
)

type Pricer interface {
	Price(ctx context.Context, req quotation.Request) (*quotation.Result, error)
}

type Resp struct {
	Pricing      *pricing.Breakdown `json:"pricing"`
	PricePerUnit float64            `json:"price_per_unit"`
}

// PriceQuotation computes the cost breakdown for a configuration without
// rendering or sending anything. Used by the form for a live preview.
func PriceQuotation(log *slog.Logger, pricer Pricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.quotation.PriceQuotation"

		var req quotation.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		res, err := pricer.Price(ctx, req)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("pricing failed")

			var validationErr *quotation.ValidationError
			if errors.As(err, &validationErr) {
				http.Error(w, validationErr.Error(), http.StatusBadRequest)
				return
			}

			var configErr *quotation.ConfigurationError
			if errors.As(err, &configErr) {
				http.Error(w, configErr.Error(), http.StatusUnprocessableEntity)
				return
			}

			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Resp{
			Pricing:      res.Pricing,
			PricePerUnit: res.PricePerUnit,
		})
	}
}
