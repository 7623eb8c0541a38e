package create

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

type Quoter interface {
	Quote(ctx context.Context, req quotation.Request) (*quotation.Result, error)
}

type Resp struct {
	State        quotation.State    `json:"state"`
	FailedStage  quotation.Stage    `json:"failed_stage,omitempty"`
	Pricing      *pricing.Breakdown `json:"pricing,omitempty"`
	PricePerUnit float64            `json:"price_per_unit,omitempty"`
	ArtifactPath string             `json:"artifact_path,omitempty"`
	Error        string             `json:"error,omitempty"`
}

// CreateQuotation runs the full quotation flow: validate, price, render the
// document, send the notification. Delivery failures still answer with the
// computed pricing so the client can resend without recomputation.
func CreateQuotation(log *slog.Logger, quoter Quoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.quotation.CreateQuotation"

		var req quotation.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		res, err := quoter.Quote(ctx, req)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("quotation failed")

			render.Status(r, statusForError(err))
			render.JSON(w, r, respFromResult(res, err))
			return
		}

		render.JSON(w, r, respFromResult(res, nil))
	}
}

func respFromResult(res *quotation.Result, err error) Resp {
	resp := Resp{}
	if res != nil {
		resp.State = res.State
		resp.FailedStage = res.FailedStage
		resp.Pricing = res.Pricing
		resp.PricePerUnit = res.PricePerUnit
		resp.ArtifactPath = res.ArtifactPath
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}

func statusForError(err error) int {
	var validationErr *quotation.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	var configErr *quotation.ConfigurationError
	if errors.As(err, &configErr) {
		return http.StatusUnprocessableEntity
	}

	var deliveryErr *quotation.DeliveryError
	if errors.As(err, &deliveryErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
