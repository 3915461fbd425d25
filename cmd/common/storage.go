/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"

	"github.com/zcred/vcs/internal/pkg/log"
	cmdutils "github.com/zcred/vcs/internal/pkg/utils/cmd"
	"github.com/zcred/vcs/pkg/storage/mongodb"
	"github.com/zcred/vcs/pkg/storage/redis"
)

const (
	// DatabaseURLFlagName is the MongoDB connection string.
	DatabaseURLFlagName = "mongodb-url"
	// DatabaseURLFlagUsage describes the usage.
	DatabaseURLFlagUsage = "MongoDB connection string with credentials if required." +
		" Example: 'mongodb://mongodb.example.com:27017'. Needed by the mongodb result and jal stores." +
		" Alternatively, this can be set with the following environment variable: " + DatabaseURLEnvKey
	// DatabaseURLEnvKey is the MongoDB connection string.
	DatabaseURLEnvKey = "ZCRED_MONGODB_URL"

	// DatabaseNameFlagName is the MongoDB database name.
	DatabaseNameFlagName = "mongodb-database"
	// DatabaseNameEnvKey is the MongoDB database name.
	DatabaseNameEnvKey = "ZCRED_MONGODB_DATABASE"
	// DatabaseNameFlagUsage describes the usage.
	DatabaseNameFlagUsage = "MongoDB database name. Defaults to " + DatabaseNameDefault + ". " +
		"Alternatively, this can be set with the following environment variable: " + DatabaseNameEnvKey

	// DatabaseTimeoutFlagName is the database timeout.
	DatabaseTimeoutFlagName = "database-timeout"
	// DatabaseTimeoutFlagUsage describes the usage.
	DatabaseTimeoutFlagUsage = "Total time in seconds to wait until a datasource is available before giving up." +
		" Default: 30 seconds." +
		" Alternatively, this can be set with the following environment variable: " + DatabaseTimeoutEnvKey
	// DatabaseTimeoutEnvKey is the database timeout.
	DatabaseTimeoutEnvKey = "ZCRED_DATABASE_TIMEOUT"

	// DatabaseTimeoutDefault is the default storage timeout.
	DatabaseTimeoutDefault = 30
	// DatabaseNameDefault is the default MongoDB database name.
	DatabaseNameDefault = "zcred"
)

// DBParameters holds database configuration.
type DBParameters struct {
	URL     string
	Name    string
	Timeout uint64
}

// Flags registers common command flags.
func Flags(cmd *cobra.Command) {
	cmd.Flags().StringP(DatabaseURLFlagName, "", "", DatabaseURLFlagUsage)
	cmd.Flags().StringP(DatabaseNameFlagName, "", "", DatabaseNameFlagUsage)
	cmd.Flags().StringP(DatabaseTimeoutFlagName, "", "", DatabaseTimeoutFlagUsage)
}

// DBParams fetches the DB parameters configured for this command. The URL is optional here;
// InitMongoDB fails if it is needed but missing.
func DBParams(cmd *cobra.Command) (*DBParameters, error) {
	params := &DBParameters{
		URL:  cmdutils.GetUserSetOptionalVarFromString(cmd, DatabaseURLFlagName, DatabaseURLEnvKey),
		Name: cmdutils.GetUserSetOptionalVarFromString(cmd, DatabaseNameFlagName, DatabaseNameEnvKey),
	}

	if params.Name == "" {
		params.Name = DatabaseNameDefault
	}

	timeout, err := cmdutils.GetInt(cmd, DatabaseTimeoutFlagName, DatabaseTimeoutEnvKey, DatabaseTimeoutDefault)
	if err != nil {
		return nil, fmt.Errorf("failed to configure dbTimeout: %w", err)
	}

	if timeout < 0 {
		return nil, fmt.Errorf("failed to configure dbTimeout: negative value %d", timeout)
	}

	params.Timeout = uint64(timeout)

	return params, nil
}

// InitMongoDB connects to MongoDB, retrying once a second until params.Timeout runs out.
func InitMongoDB(params *DBParameters, logger *log.Log, opts ...mongodb.ClientOpt) (*mongodb.Client, error) {
	if params.URL == "" {
		return nil, fmt.Errorf("%s is required for the mongodb stores", DatabaseURLFlagName)
	}

	if !strings.HasPrefix(params.URL, "mongodb://") && !strings.HasPrefix(params.URL, "mongodb+srv://") {
		return nil, fmt.Errorf("unsupported mongodb url scheme: %s", params.URL)
	}

	var client *mongodb.Client

	err := retry(
		func() error {
			c, err := mongodb.New(params.URL, params.Name, opts...)
			if err != nil {
				return err
			}

			if err = c.Ping(context.Background()); err != nil {
				_ = c.Close()

				return err
			}

			client = c

			return nil
		},
		params.Timeout,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to init mongodb client: %w", err)
	}

	return client, nil
}

// InitRedis connects to Redis with the same retry policy as InitMongoDB.
func InitRedis(addrs []string, timeout uint64, logger *log.Log, opts ...redis.ClientOpt) (*redis.Client, error) {
	if len(addrs) == 0 {
		return nil, fmt.Errorf("redis addresses are required")
	}

	var client *redis.Client

	err := retry(
		func() error {
			var err error

			client, err = redis.New(addrs, opts...)

			return err
		},
		timeout,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis client: %w", err)
	}

	return client, nil
}

func retry(task func() error, numRetries uint64, logger *log.Log) error {
	const sleep = 1 * time.Second

	return backoff.RetryNotify(
		task,
		backoff.WithMaxRetries(backoff.NewConstantBackOff(sleep), numRetries),
		func(retryErr error, t time.Duration) {
			logger.Warn("Failed to connect to storage, will sleep before trying again.",
				log.WithDuration(t), log.WithError(retryErr))
		},
	)
}
