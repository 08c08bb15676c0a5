package health

import (
	"context"
	"fmt"
	"time"

	"github.com/geekfaka/storefront/internal/config"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

const version = "1.0.0"

// NewHealthHandler checks postgres and redis. Stripe is only probed when an
// API key is configured and its failure does not mark the service down,
// since zero-priced orders and the catalog work without it.
func NewHealthHandler(cfg *config.Config) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		},
		{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		},
	}

	if cfg.Stripe.APIKey != "" {
		sc := client.New(cfg.Stripe.APIKey, nil)

		checks = append(checks, health.Config{
			Name:      "stripe",
			Timeout:   5 * time.Second,
			SkipOnErr: true,
			Check: func(ctx context.Context) error {
				params := &stripe.BalanceParams{
					Params: stripe.Params{
						Context: ctx,
					},
				}
				if _, err := sc.Balance.Get(params); err != nil {
					return fmt.Errorf("failed to connect to stripe: %w", err)
				}
				return nil
			},
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "geekfaka-storefront",
			Version: version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
