package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/geekfaka/storefront/internal/config"
	"go.opentelemetry.io/otel/attribute"

	_ "github.com/lib/pq"
)

const DefaultPingTimeout = 5 * time.Second

// Repository bundles every table repository over one connection pool.
type Repository struct {
	DB         *sql.DB
	Categories CategoryRepository
	Products   ProductRepository
	Catalog    CatalogRepository
	Discounts  DiscountRepository
	Coupons    CouponRepository
	Licenses   LicenseRepository
	Orders     OrderRepository
	Articles   ArticleRepository
	Settings   SettingRepository
}

func New(cfg *config.Config) (*Repository, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), DefaultPingTimeout)
	defer cancel()

	// Test the connection to make sure DB is reachable
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewWithDB(db), nil
}

// NewWithDB wires the repositories over an already opened pool.
func NewWithDB(db *sql.DB) *Repository {
	return &Repository{
		DB:         db,
		Categories: NewCategoryRepo(db),
		Products:   NewProductRepo(db),
		Catalog:    NewCatalogRepo(db),
		Discounts:  NewDiscountRepo(db),
		Coupons:    NewCouponRepo(db),
		Licenses:   NewLicenseRepo(db),
		Orders:     NewOrderRepo(db),
		Articles:   NewArticleRepo(db),
		Settings:   NewSettingRepo(db),
	}
}

func (p *Repository) Close() error {
	return p.DB.Close()
}
