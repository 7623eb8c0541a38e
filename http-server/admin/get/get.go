package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"quotation-golang/internal/storage"
)

type CostParametersProvider interface {
	GetCostParameters(ctx context.Context) (*storage.CostParameters, error)
}

func GetCostParametersAdmin(log *slog.Logger, provider CostParametersProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.GetCostParametersAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		params, err := provider.GetCostParameters(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to get cost parameters")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, params)
	}
}
