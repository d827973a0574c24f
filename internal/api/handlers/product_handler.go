package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bizlingo/bizlingo-be/internal/auth"
	"github.com/bizlingo/bizlingo-be/internal/models"
	"github.com/bizlingo/bizlingo-be/internal/services"
	"github.com/rs/zerolog/log"
)

// ProductHandler handles HTTP requests for product listings.
type ProductHandler struct {
	service services.ProductServiceProvider
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service services.ProductServiceProvider) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create adds a new product listing for the authenticated user.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(auth.UserClaimsKey).(*auth.Claims)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	product.OwnerID = claims.UserID

	created, err := h.service.CreateProduct(product)
	if err != nil {
		log.Warn().Err(err).Str("user_id", claims.UserID).Msg("Failed to create product")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetAll lists all product listings, newest first.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve products")
		writeError(w, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// Delete removes a product listing. Unknown ids are a no-op.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(auth.UserClaimsKey).(*auth.Claims)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.DeleteProduct(id, claims.UserID); err != nil {
		log.Error().Err(err).Str("product_id", id).Msg("Failed to delete product")
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
