package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"quotation-golang/internal/storage"
)

type AdminUpdater interface {
	UpdateCostParameters(ctx context.Context, params storage.CostParameters) error
	SetProductOperations(ctx context.Context, productID int64, assignments []storage.ProductOperation) error
}

func UpdateCostParametersAdmin(log *slog.Logger, updater AdminUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.UpdateCostParametersAdmin"

		var params storage.CostParameters
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if params.LaborRate < 0 || params.OverheadRate < 0 {
			http.Error(w, "rates must be non-negative", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateCostParameters(ctx, params); err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to update cost parameters")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func SetProductOperationsAdmin(log *slog.Logger, updater AdminUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.SetProductOperationsAdmin"

		idStr := chi.URLParam(r, "id")
		productID, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid product id", http.StatusBadRequest)
			return
		}

		var assignments []storage.ProductOperation
		if err := json.NewDecoder(r.Body).Decode(&assignments); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.SetProductOperations(ctx, productID, assignments); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "referenced operation does not exist", http.StatusUnprocessableEntity)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to set product operations")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
