package main

import (
	"context"
	"fmt"

	"ticketfront/internal/app/profiles"
	"ticketfront/internal/kv"
	"ticketfront/internal/logging"
)

var demoProfile = profiles.Profile{
	Name:  "Demo Shopper",
	Email: "demo@ticketfront.example",
}

// seedDemoProfile gives clients without an X-Client-ID header a profile page
// to look at before their first checkout.
func seedDemoProfile(ctx context.Context, svc profiles.Service) error {
	created, err := svc.CreateIfMissing(ctx, kv.AnonymousClient, demoProfile)
	if err != nil {
		return fmt.Errorf("bootstrap demo profile: %w", err)
	}
	if created {
		logging.Info("demo profile created")
	}
	return nil
}
