// Package firestore stores fetch results in Cloud Firestore.
package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rtcfetch/pkg/domain/model"
)

// DefaultCollection holds one document per fetch, keyed by fetch ID
const DefaultCollection = "rtc_fetches"

// Recorder implements interfaces.FetchRecorder
type Recorder struct {
	client     *firestore.Client
	collection string
}

// Option configures the recorder
type Option func(*Recorder)

// WithCollection overrides DefaultCollection
func WithCollection(name string) Option {
	return func(r *Recorder) {
		r.collection = name
	}
}

// New connects to the given Firestore database. An empty databaseID selects
// the default database.
func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Recorder, error) {
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("project_id", projectID),
			goerr.V("database_id", databaseID),
		)
	}

	r := &Recorder{
		client:     client,
		collection: DefaultCollection,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Record writes result, replacing any document with the same fetch ID
func (r *Recorder) Record(ctx context.Context, result *model.FetchResult) error {
	if result.ID == "" {
		return goerr.New("fetch result has no ID")
	}

	if _, err := r.client.Collection(r.collection).Doc(result.ID).Set(ctx, result); err != nil {
		return goerr.Wrap(err, "failed to store fetch result",
			goerr.V("collection", r.collection),
			goerr.V("fetch_id", result.ID),
		)
	}
	return nil
}

// Get reads back the result stored under id
func (r *Recorder) Get(ctx context.Context, id string) (*model.FetchResult, error) {
	doc, err := r.client.Collection(r.collection).Doc(id).Get(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get fetch result", goerr.V("fetch_id", id))
	}

	var result model.FetchResult
	if err := doc.DataTo(&result); err != nil {
		return nil, goerr.Wrap(err, "failed to decode fetch result", goerr.V("fetch_id", id))
	}
	return &result, nil
}

// Close releases the underlying client
func (r *Recorder) Close() error {
	return r.client.Close()
}
