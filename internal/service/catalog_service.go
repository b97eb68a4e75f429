package service

import (
	"context"
	"fmt"

	"github.com/columnamoda/store_bot/internal/model"
	"go.uber.org/zap"
)

// ProductStore минимальный доступ к хранилищу товаров
type ProductStore interface {
	Create(ctx context.Context, product *model.Product) error
	List(ctx context.Context, category *string) ([]*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	UpdateStock(ctx context.Context, id int64, stock int) error
}

type CatalogService struct {
	productRepo ProductStore
	logger      *zap.Logger
}

func NewCatalogService(productRepo ProductStore, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// ListProducts получает товары, опционально по категории
func (s *CatalogService) ListProducts(ctx context.Context, category *string) ([]*model.Product, error) {
	return s.productRepo.List(ctx, category)
}

// CreateProduct добавляет товар (только для админов, проверка на уровне handlers)
func (s *CatalogService) CreateProduct(ctx context.Context, name, description string, price float64, stock int) (*model.Product, error) {
	if price < 0 {
		return nil, fmt.Errorf("price must be non-negative")
	}
	if stock < 0 {
		return nil, fmt.Errorf("stock must be non-negative")
	}

	product := &model.Product{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.logger.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("name", name),
		zap.Float64("price", price),
	)

	return product, nil
}

// UpdateStock меняет остаток существующего товара
func (s *CatalogService) UpdateStock(ctx context.Context, productID int64, stock int) (*model.Product, error) {
	if stock < 0 {
		return nil, fmt.Errorf("stock must be non-negative")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %d not found", productID)
	}

	if err := s.productRepo.UpdateStock(ctx, productID, stock); err != nil {
		return nil, fmt.Errorf("update stock: %w", err)
	}

	product.Stock = stock

	s.logger.Info("Product stock updated",
		zap.Int64("product_id", productID),
		zap.Int("stock", stock),
	)

	return product, nil
}
