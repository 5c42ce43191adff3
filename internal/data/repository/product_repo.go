package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-api/internal/data/entity"
	"marketplace-api/pkg/apperror"
	"marketplace-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ProductFilter narrows product reads. Zero value means every non-deleted product.
type ProductFilter struct {
	SellerID   *uuid.UUID
	ActiveOnly bool
}

func (f ProductFilter) conditions() *conditions {
	c := &conditions{}
	c.raw(notDeleted)
	if f.SellerID != nil {
		c.add("seller_id = $%d", *f.SellerID)
	}
	if f.ActiveOnly {
		c.add("status = $%d", entity.ProductStatusActive)
	}
	return c
}

type ProductRepository interface {
	FindAll(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	CountAll(ctx context.Context, filter ProductFilter) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID, filter ProductFilter) (*entity.Product, error)
	SoftDeleteBySeller(ctx context.Context, id, sellerID uuid.UUID, at time.Time) error
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

const productColumns = `id, seller_id, channel_id, name, description, price, stock, status, created_at, updated_at, deleted_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var product entity.Product
	var deletedAt *time.Time

	err := row.Scan(
		&product.ID,
		&product.SellerID,
		&product.ChannelID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.Status,
		&product.CreatedAt,
		&product.UpdatedAt,
		&deletedAt,
	)
	if err != nil {
		return nil, err
	}

	product.Lifecycle = entity.LifecycleFrom(deletedAt)
	return &product, nil
}

func (r *productRepository) FindAll(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error) {
	c := filter.conditions()
	suffix, args := c.page(limit, offset)
	query := `SELECT ` + productColumns + ` FROM products` + c.where() + ` ORDER BY created_at DESC` + suffix

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find all products",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all products limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

func (r *productRepository) CountAll(ctx context.Context, filter ProductFilter) (int64, error) {
	c := filter.conditions()
	query := `SELECT COUNT(*) FROM products` + c.where()

	var total int64
	if err := r.db.QueryRow(ctx, query, c.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count products", zap.Error(err))
		return 0, fmt.Errorf("count all products: %w", err)
	}

	return total, nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID, filter ProductFilter) (*entity.Product, error) {
	c := filter.conditions()
	c.add("id = $%d", id)
	query := `SELECT ` + productColumns + ` FROM products` + c.where()

	product, err := scanProduct(r.db.QueryRow(ctx, query, c.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id.String(), err)
	}

	return product, nil
}

func (r *productRepository) SoftDeleteBySeller(ctx context.Context, id, sellerID uuid.UUID, at time.Time) error {
	query := `UPDATE products SET deleted_at = $3, updated_at = $3 WHERE id = $1 AND seller_id = $2 AND ` + notDeleted

	result, err := r.db.Exec(ctx, query, id, sellerID, at)
	if err != nil {
		r.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("product_id", id.String()),
			zap.String("seller_id", sellerID.String()),
		)
		return fmt.Errorf("delete product %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound(fmt.Sprintf("product %s not found", id.String()))
	}

	r.log.Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}
