package repository

import (
	"context"
	"database/sql"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/shopspring/decimal"
)

type CatalogRepository interface {
	// ListCatalog returns every category by priority, each with its active
	// products, their discount and the number of AVAILABLE licenses.
	ListCatalog(ctx context.Context) ([]*models.CatalogCategory, error)
}

type catalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepo(db *sql.DB) CatalogRepository {
	return &catalogRepository{DB: db}
}

func (r *catalogRepository) ListCatalog(ctx context.Context) ([]*models.CatalogCategory, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		SELECT c.id, c.name, c.priority,
			p.id, p.name, p.description, p.price, p.enable_coupons,
			d.type, d.value, d.is_active, d.start_date, d.end_date,
			(SELECT COUNT(*) FROM licenses l WHERE l.product_id = p.id AND l.status = 'AVAILABLE') AS stock
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id AND p.is_active
		LEFT JOIN discounts d ON d.id = p.discount_id
		ORDER BY c.priority DESC, c.name, c.id, p.created_at`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	categories := []*models.CatalogCategory{}

	var current *models.CatalogCategory

	for rows.Next() {
		var (
			categoryID, categoryName           string
			priority                           int
			productID, productName, productDes sql.NullString
			price, discountValue               decimal.NullDecimal
			enableCoupons, discountActive      sql.NullBool
			discountType                       sql.NullString
			startDate, endDate                 sql.NullTime
			stock                              int
		)

		err := rows.Scan(&categoryID, &categoryName, &priority,
			&productID, &productName, &productDes, &price, &enableCoupons,
			&discountType, &discountValue, &discountActive, &startDate, &endDate,
			&stock)
		if err != nil {
			return nil, err
		}

		if current == nil || current.ID != categoryID {
			current = &models.CatalogCategory{
				ID:       categoryID,
				Name:     categoryName,
				Priority: priority,
				Products: []models.CatalogProduct{},
			}
			categories = append(categories, current)
		}

		if !productID.Valid {
			continue
		}

		product := models.CatalogProduct{
			ID:            productID.String,
			Name:          productName.String,
			Description:   productDes.String,
			Price:         price.Decimal,
			FinalPrice:    price.Decimal,
			Stock:         stock,
			EnableCoupons: enableCoupons.Bool,
		}

		if discountType.Valid {
			product.Discount = &models.CatalogDiscount{
				Type:      models.DiscountType(discountType.String),
				Value:     discountValue.Decimal,
				IsActive:  discountActive.Bool,
				StartDate: startDate.Time,
				EndDate:   endDate.Time,
			}
		}

		current.Products = append(current.Products, product)
	}

	return categories, rows.Err()
}
