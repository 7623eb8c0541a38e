package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"quotation-golang/internal/storage"
)

type CatalogWriter interface {
	CreateProduct(ctx context.Context, product storage.Product) (int64, error)
	CreateMaterial(ctx context.Context, material storage.Material) (int64, error)
	CreateCoating(ctx context.Context, coating storage.Coating) (int64, error)
	CreateOperation(ctx context.Context, operation storage.Operation) (int64, error)
}

type Resp struct {
	ID int64 `json:"id"`
}

func SaveProductAdmin(log *slog.Logger, writer CatalogWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.SaveProductAdmin"

		var req storage.Product
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := writer.CreateProduct(ctx, req)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to create product")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Resp{ID: id})
	}
}

func SaveMaterialAdmin(log *slog.Logger, writer CatalogWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.SaveMaterialAdmin"

		var req storage.Material
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.Name == "" || req.CostPerMM < 0 {
			http.Error(w, "name and non-negative cost_per_mm are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := writer.CreateMaterial(ctx, req)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to create material")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Resp{ID: id})
	}
}

func SaveCoatingAdmin(log *slog.Logger, writer CatalogWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.SaveCoatingAdmin"

		var req storage.Coating
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.Name == "" || req.CostPerMM < 0 {
			http.Error(w, "name and non-negative cost_per_mm are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := writer.CreateCoating(ctx, req)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to create coating")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Resp{ID: id})
	}
}

func SaveOperationAdmin(log *slog.Logger, writer CatalogWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.SaveOperationAdmin"

		var req storage.Operation
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.Name == "" || req.BaseLaborCost < 0 {
			http.Error(w, "name and non-negative base_labor_cost are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := writer.CreateOperation(ctx, req)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to create operation")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Resp{ID: id})
	}
}
