/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultTimeout     = 15 * time.Second
	defaultMaxPoolSize = 200
)

// Client is a connected MongoDB client bound to one database.
type Client struct {
	client   *mongo.Client
	database string
	timeout  time.Duration
}

type clientOpts struct {
	timeout       time.Duration
	maxPoolSize   uint64
	traceProvider trace.TracerProvider
}

// ClientOpt configures New.
type ClientOpt func(opts *clientOpts)

// WithTimeout bounds connecting and disconnecting.
func WithTimeout(timeout time.Duration) ClientOpt {
	return func(opts *clientOpts) {
		opts.timeout = timeout
	}
}

func WithMaxPoolSize(size uint64) ClientOpt {
	return func(opts *clientOpts) {
		opts.maxPoolSize = size
	}
}

// WithTraceProvider enables otel spans for every command.
func WithTraceProvider(traceProvider trace.TracerProvider) ClientOpt {
	return func(opts *clientOpts) {
		opts.traceProvider = traceProvider
	}
}

// New connects to connString. Reads prefer secondaries.
func New(connString, database string, opts ...ClientOpt) (*Client, error) {
	o := &clientOpts{
		timeout:     defaultTimeout,
		maxPoolSize: defaultMaxPoolSize,
	}

	for _, fn := range opts {
		fn(o)
	}

	mongoOpts := options.Client().
		ApplyURI(connString).
		SetReadPreference(readpref.SecondaryPreferred()).
		SetMaxPoolSize(o.maxPoolSize)

	if o.traceProvider != nil {
		mongoOpts.SetMonitor(otelmongo.NewMonitor(otelmongo.WithTracerProvider(o.traceProvider)))
	}

	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, mongoOpts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	return &Client{
		client:   client,
		database: database,
		timeout:  o.timeout,
	}, nil
}

func (c *Client) Database() *mongo.Database {
	return c.client.Database(c.database)
}

// Collection is a shortcut for Database().Collection(name).
func (c *Client) Collection(name string) *mongo.Collection {
	return c.Database().Collection(name)
}

// Ping checks the primary is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Close disconnects. Closing twice is not an error.
func (c *Client) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	if err := c.client.Disconnect(ctx); err != nil && !errors.Is(err, mongo.ErrClientDisconnected) {
		return fmt.Errorf("disconnect from mongodb: %w", err)
	}

	return nil
}
