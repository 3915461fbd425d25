/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package cmd reads start parameters that may come from either a command line flag or an
// environment variable. A flag that was set explicitly always wins over its environment twin.
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// GetUserSetOptionalVarFromString returns the flag or env value, or an empty string if neither is set.
func GetUserSetOptionalVarFromString(cmd *cobra.Command, flagName, envKey string) string {
	//nolint:errcheck // no error for optional var
	v, _ := GetUserSetVarFromString(cmd, flagName, envKey, true)

	return v
}

// GetUserSetVarFromString returns values either command line flag or environment variable.
func GetUserSetVarFromString(cmd *cobra.Command, flagName, envKey string, isOptional bool) (string, error) {
	if cmd.Flags().Changed(flagName) {
		value, err := cmd.Flags().GetString(flagName)
		if err != nil {
			return "", fmt.Errorf("%s flag not found: %w", flagName, err)
		}

		if value == "" {
			return "", fmt.Errorf("%s value is empty", flagName)
		}

		return value, nil
	}

	value, isSet := os.LookupEnv(envKey)

	switch {
	case isOptional:
		return value, nil
	case !isSet:
		return "", fmt.Errorf("neither %s (command line flag) nor %s (environment variable) have been set",
			flagName, envKey)
	case value == "":
		return "", fmt.Errorf("%s value is empty", envKey)
	}

	return value, nil
}

// GetUserSetOptionalCSVVar returns comma separated values from the flag (a StringSlice) or the env
// variable. Nil is returned when neither is set.
func GetUserSetOptionalCSVVar(cmd *cobra.Command, flagName, envKey string) []string {
	if cmd.Flags().Changed(flagName) {
		//nolint:errcheck // flag is always registered as a StringSlice
		value, _ := cmd.Flags().GetStringSlice(flagName)

		return value
	}

	value := os.Getenv(envKey)
	if value == "" {
		return nil
	}

	return strings.Split(value, ",")
}

// GetDuration parses an optional duration, returning defaultValue if it is not set.
func GetDuration(cmd *cobra.Command, flagName, envKey string, defaultValue time.Duration) (time.Duration, error) {
	value := GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value [%s] for %s: %w", value, flagName, err)
	}

	return d, nil
}

// GetInt parses an optional integer, returning defaultValue if it is not set.
func GetInt(cmd *cobra.Command, flagName, envKey string, defaultValue int) (int, error) {
	value := GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if value == "" {
		return defaultValue, nil
	}

	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value [%s] for %s: %w", value, flagName, err)
	}

	return i, nil
}

// GetBool parses an optional boolean, returning defaultValue if it is not set.
func GetBool(cmd *cobra.Command, flagName, envKey string, defaultValue bool) (bool, error) {
	value := GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if value == "" {
		return defaultValue, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid value [%s] for %s: %w", value, flagName, err)
	}

	return b, nil
}
