package repository

import (
	"context"
	"errors"

	"maritime_registry/internal/app/ds"

	"github.com/sirupsen/logrus"
)

var (
	baselineShipTypes = []string{"cargo", "tanker", "container ship", "bulk carrier", "passenger ship", "fishing vessel"}
	baselineFlags     = []string{"france", "panama", "liberia", "marshall islands", "malta"}
)

// Seed inserts the baseline lookups and the given admin account. Rows that
// already exist are left as they are, so running it twice is harmless.
func (r *Repository) Seed(ctx context.Context, admin ds.UserInput) error {
	for _, name := range baselineShipTypes {
		if _, _, err := r.CreateShipType(ctx, name); err != nil {
			return err
		}
	}
	for _, country := range baselineFlags {
		if _, _, err := r.CreateFlag(ctx, country); err != nil {
			return err
		}
	}

	_, err := r.CreateUser(ctx, admin)
	if errors.Is(err, ErrConflict) {
		logrus.Infof("Seed: user %s already exists", admin.Username)
		return nil
	}
	return err
}
