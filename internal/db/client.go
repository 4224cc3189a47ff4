package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
)

var ErrNotFound = errors.New("not found")

type NewMongoClientParams struct {
	URI            string
	AppName        string
	TracingEnabled bool
	// ConnectionsGauge, when set, tracks the number of open pool connections.
	ConnectionsGauge prometheus.Gauge
}

func NewMongoClient(ctx context.Context, params NewMongoClientParams) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(params.URI).
		SetAppName(params.AppName).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)

	if params.TracingEnabled {
		opts.SetMonitor(otelmongo.NewMonitor())
	}
	if params.ConnectionsGauge != nil {
		opts.SetPoolMonitor(NewPoolMonitor(params.ConnectionsGauge))
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	return client, nil
}

func NewPoolMonitor(connectionsGauge prometheus.Gauge) *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(e *event.PoolEvent) {
			switch e.Type {
			case event.ConnectionCreated:
				connectionsGauge.Inc()
			case event.ConnectionClosed:
				connectionsGauge.Dec()
			}
		},
	}
}
