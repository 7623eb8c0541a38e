package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"quotation-golang/internal/storage"
)

type CatalogProvider interface {
	ListProducts(ctx context.Context) ([]*storage.Product, error)
	ListMaterials(ctx context.Context) ([]*storage.Material, error)
	ListCoatings(ctx context.Context) ([]*storage.Coating, error)
	ListOperations(ctx context.Context) ([]*storage.Operation, error)
}

func GetProducts(log *slog.Logger, catalog CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.GetProducts"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		products, err := catalog.ListProducts(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to list products")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, products)
	}
}

func GetMaterials(log *slog.Logger, catalog CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.GetMaterials"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		materials, err := catalog.ListMaterials(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to list materials")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, materials)
	}
}

func GetCoatings(log *slog.Logger, catalog CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.GetCoatings"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		coatings, err := catalog.ListCoatings(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to list coatings")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, coatings)
	}
}

func GetOperations(log *slog.Logger, catalog CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.GetOperations"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		operations, err := catalog.ListOperations(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to list operations")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, operations)
	}
}
