package config

import (
	"context"

	"github.com/m-mizutani/rtcfetch/pkg/infra/firestore"
	"github.com/urfave/cli/v3"
)

// Firestore holds fetch history configuration
type Firestore struct {
	ProjectID  string
	DatabaseID string
	Collection string
}

// Flags returns CLI flags for Firestore configuration
func (c *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Google Cloud project storing fetch history; disabled when empty",
			Destination: &c.ProjectID,
			Sources:     cli.EnvVars("RTCFETCH_FIRESTORE_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Destination: &c.DatabaseID,
			Sources:     cli.EnvVars("RTCFETCH_FIRESTORE_DATABASE_ID"),
		},
		&cli.StringFlag{
			Name:        "firestore-collection",
			Usage:       "Firestore collection for fetch results",
			Value:       firestore.DefaultCollection,
			Destination: &c.Collection,
			Sources:     cli.EnvVars("RTCFETCH_FIRESTORE_COLLECTION"),
		},
	}
}

// Configure connects the recorder. It returns nil when no project is set.
func (c *Firestore) Configure(ctx context.Context) (*firestore.Recorder, error) {
	if c.ProjectID == "" {
		return nil, nil
	}

	var opts []firestore.Option
	if c.Collection != "" {
		opts = append(opts, firestore.WithCollection(c.Collection))
	}
	return firestore.New(ctx, c.ProjectID, c.DatabaseID, opts...)
}
