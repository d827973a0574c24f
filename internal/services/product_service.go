package services

import (
	"database/sql"
	"strings"
	"time"

	"github.com/bizlingo/bizlingo-be/internal/apperror"
	"github.com/bizlingo/bizlingo-be/internal/models"
	"github.com/google/uuid"
)

// ProductServiceProvider defines the interface for product listings.
type ProductServiceProvider interface {
	CreateProduct(product models.Product) (models.Product, error)
	GetAllProducts() ([]models.Product, error)
	DeleteProduct(id, userID string) error
}

// ProductService provides CRUD over product listings. There is no update
// path: a listing is replaced by deleting and re-creating it.
type ProductService struct {
	db            *sql.DB
	notifications NotificationServiceProvider
}

// NewProductService creates a new ProductService.
func NewProductService(db *sql.DB, notifications NotificationServiceProvider) *ProductService {
	return &ProductService{db: db, notifications: notifications}
}

// CreateProduct persists a new product listing. The image is stored as the
// data URI the client uploaded; there is no server-side asset store.
func (s *ProductService) CreateProduct(product models.Product) (models.Product, error) {
	if strings.TrimSpace(product.Title) == "" {
		return models.Product{}, apperror.ValidationFailed("title", "title is required")
	}
	if product.Price <= 0 {
		return models.Product{}, apperror.ValidationFailed("price", "price must be greater than zero")
	}

	product.ID = uuid.New().String()
	product.CreatedAt = time.Now().UTC()

	_, err := s.db.Exec(
		"INSERT INTO products (id, owner_id, image_url, title, description, price, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		product.ID, product.OwnerID, product.ImageURL, product.Title, product.Description, product.Price, product.CreatedAt,
	)
	if err != nil {
		return models.Product{}, apperror.Storage("insert product", err)
	}

	s.notifications.Notify("success", "Product added successfully!", &product.OwnerID)
	return product, nil
}

// GetAllProducts retrieves all product listings, newest first.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	rows, err := s.db.Query(
		"SELECT id, owner_id, image_url, title, description, price, created_at FROM products ORDER BY created_at DESC, id")
	if err != nil {
		return nil, apperror.Storage("select products", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		var imageURL, description sql.NullString
		if err := rows.Scan(&p.ID, &p.OwnerID, &imageURL, &p.Title, &description, &p.Price, &p.CreatedAt); err != nil {
			return nil, apperror.Storage("scan product", err)
		}
		p.ImageURL = imageURL.String
		p.Description = description.String
		products = append(products, p)
	}
	return products, rows.Err()
}

// DeleteProduct removes a listing by id. Deleting an unknown id is a no-op.
func (s *ProductService) DeleteProduct(id, userID string) error {
	res, err := s.db.Exec("DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return apperror.Storage("delete product", err)
	}
	if affected, _ := res.RowsAffected(); affected > 0 {
		s.notifications.Notify("success", "Product deleted", &userID)
	}
	return nil
}
