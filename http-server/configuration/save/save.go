package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"quotation-golang/internal/storage"
)

type ConfigurationSaver interface {
	SaveConfiguration(ctx context.Context, cfg storage.ProductConfiguration) (int64, error)
}

type Resp struct {
	ConfigID int64 `json:"config_id"`
}

func SaveConfiguration(log *slog.Logger, saver ConfigurationSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.configuration.SaveConfiguration"

		var req storage.ProductConfiguration
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if req.ProductID <= 0 || req.MaterialID <= 0 || req.CoatingID <= 0 {
			http.Error(w, "product_id, material_id and coating_id are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.SaveConfiguration(ctx, req)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "selected catalog id does not exist", http.StatusUnprocessableEntity)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to save configuration")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Resp{ConfigID: id})
	}
}
