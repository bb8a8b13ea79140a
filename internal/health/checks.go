package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/config"
	stripeClient "github.com/aaravmahajanofficial/cloud-kitchen/pkg/stripe"
	"github.com/hellofresh/health-go/v5"
	healthMongo "github.com/hellofresh/health-go/v5/checks/mongo"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

const componentName = "cloud-kitchen"

func NewHealthHandler(cfg *config.Config, stripe stripeClient.Client, version string) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    componentName,
			Version: version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "database",
				Timeout:   3 * time.Second,
				SkipOnErr: false,
				Check: postgres.New(postgres.Config{
					DSN: cfg.Database.GetDSN(),
				}),
			},
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: healthRedis.New(healthRedis.Config{
					DSN: cfg.RedisConnect.GetDSN(),
				}),
			},
			health.Config{
				Name:      "mongo",
				Timeout:   3 * time.Second,
				SkipOnErr: false,
				Check: healthMongo.New(healthMongo.Config{
					DSN: cfg.Mongo.URI,
				}),
			},
			// checkout is degraded, not down, while the gateway is unreachable
			health.Config{
				Name:      "stripe",
				Timeout:   5 * time.Second,
				SkipOnErr: true,
				Check:     StripeCheck(stripe),
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

func StripeCheck(client stripeClient.Client) health.CheckFunc {
	return func(ctx context.Context) error {
		if client == nil {
			return fmt.Errorf("stripe client is not initialized")
		}

		if err := client.Ping(ctx); err != nil {
			return fmt.Errorf("failed to connect to stripe: %w", err)
		}

		return nil
	}
}
