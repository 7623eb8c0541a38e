package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getadmin "quotation-golang/http-server/admin/get"
	saveadmin "quotation-golang/http-server/admin/save"
	upadmin "quotation-golang/http-server/admin/update"
	getcatalog "quotation-golang/http-server/catalog/get"
	getconfiguration "quotation-golang/http-server/configuration/get"
	saveconfiguration "quotation-golang/http-server/configuration/save"
	"quotation-golang/http-server/quotation/create"
	"quotation-golang/http-server/quotation/price"
	"quotation-golang/internal/config"
	"quotation-golang/internal/middleware/auth"
	"quotation-golang/internal/service/quotation"
	"quotation-golang/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, quoteService *quotation.Service) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// catalog data for the quotation form
	router.Get("/api/catalog/products", getcatalog.GetProducts(log, storage))
	router.Get("/api/catalog/materials", getcatalog.GetMaterials(log, storage))
	router.Get("/api/catalog/coatings", getcatalog.GetCoatings(log, storage))
	router.Get("/api/catalog/operations", getcatalog.GetOperations(log, storage))

	// quotation flow: price preview and full submit with document + email
	router.Post("/api/quotation", create.CreateQuotation(log, quoteService))
	router.Post("/api/quotation/price", price.PriceQuotation(log, quoteService))

	// saved configurations
	router.Post("/api/configurations", saveconfiguration.SaveConfiguration(log, storage))
	router.Get("/api/configurations/{id}", getconfiguration.GetConfiguration(log, storage))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/cost-parameters", getadmin.GetCostParametersAdmin(log, storage))
	adminRouter.Put("/cost-parameters", upadmin.UpdateCostParametersAdmin(log, storage))
	adminRouter.Post("/products", saveadmin.SaveProductAdmin(log, storage))
	adminRouter.Post("/materials", saveadmin.SaveMaterialAdmin(log, storage))
	adminRouter.Post("/coatings", saveadmin.SaveCoatingAdmin(log, storage))
	adminRouter.Post("/operations", saveadmin.SaveOperationAdmin(log, storage))
	adminRouter.Put("/products/{id}/operations", upadmin.SetProductOperationsAdmin(log, storage))

	router.Mount("/api/admin", adminRouter)

	return router
}
