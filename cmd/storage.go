package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Shivanand-hulikatti/medcamp/internal/config"
	"github.com/Shivanand-hulikatti/medcamp/internal/database"
	"github.com/Shivanand-hulikatti/medcamp/internal/repository"
	"github.com/Shivanand-hulikatti/medcamp/internal/repository/mongostore"
	"github.com/Shivanand-hulikatti/medcamp/internal/service"
)

// stores is one backend's implementation of every store the services use.
type stores struct {
	registrations service.RegistrationStore
	camps         service.CampStore
	payments      service.PaymentLedger
	users         service.UserStore
	feedback      service.FeedbackStore
	close         func()
}

func openStores(ctx context.Context, cfg *config.Config, log *zerolog.Logger) (*stores, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := database.NewPool(ctx, cfg.Postgres, log)
		if err != nil {
			return nil, err
		}
		return &stores{
			registrations: repository.NewRegistrationRepository(pool),
			camps:         repository.NewCampRepository(pool),
			payments:      repository.NewPaymentRepository(pool),
			users:         repository.NewUserRepository(pool),
			feedback:      repository.NewFeedbackRepository(pool),
			close:         pool.Close,
		}, nil

	case config.DriverMongo:
		client, db, err := database.NewMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		return &stores{
			registrations: mongostore.NewRegistrationStore(db),
			camps:         mongostore.NewCampStore(db),
			payments:      mongostore.NewPaymentStore(db),
			users:         mongostore.NewUserStore(db),
			feedback:      mongostore.NewFeedbackStore(db),
			close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					log.Warn().Err(err).Msg("mongo disconnect")
				}
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
