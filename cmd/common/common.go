/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"strings"

	"github.com/zcred/vcs/internal/pkg/log"
)

const (
	// LogLevelFlagName is the flag name used for setting the default log level.
	LogLevelFlagName = "log-level"
	// LogLevelEnvKey is the env var name used for setting the default log level.
	LogLevelEnvKey = "ZCRED_LOG_LEVEL"
	// LogLevelFlagShorthand is the shorthand flag name used for setting the default log level.
	LogLevelFlagShorthand = "l"
	// LogLevelPrefixFlagUsage is the usage text for the log level flag.
	LogLevelPrefixFlagUsage = "Sets logging levels for individual modules as well as the default level. `+" +
		"`The format of the string is as follows: module1=level1:module2=level2:defaultLevel. `+" +
		"`Supported levels are: FATAL, PANIC, ERROR, WARN, INFO, DEBUG." +
		"`Example: issuance-service=DEBUG:redis-store=WARN:INFO. `+" +
		`Defaults to info if not set. Setting to debug may adversely impact performance. Alternatively, this can be ` +
		"set with the following environment variable: " + LogLevelEnvKey

	// LogFormatFlagName selects the encoding of the audit log.
	LogFormatFlagName = "log-format"
	// LogFormatEnvKey is the env var twin of LogFormatFlagName.
	LogFormatEnvKey = "ZCRED_LOG_FORMAT"
	// LogFormatFlagUsage is the usage text for the log format flag.
	LogFormatFlagUsage = "Encoding of the event audit log. Supported options: console, json. Defaults to console. " +
		"Alternatively, this can be set with the following environment variable: " + LogFormatEnvKey
)

// SetDefaultLogLevel sets the default log level, or the per module levels if userLogLevel is a spec.
func SetDefaultLogLevel(logger *log.Log, userLogLevel string) {
	if strings.ContainsAny(userLogLevel, ":=") {
		if err := log.SetSpec(userLogLevel); err != nil {
			logger.Warn("Invalid log level spec. Defaulting to info.", log.WithUserLogLevel(userLogLevel),
				log.WithError(err))

			log.SetDefaultLevel(log.INFO)
		}

		return
	}

	logLevel, err := log.ParseLevel(userLogLevel)
	if err != nil {
		logger.Warn(`User log level is not a valid. It must be one of the following: `+
			log.PANIC.String()+", "+
			log.FATAL.String()+", "+
			log.ERROR.String()+", "+
			log.WARNING.String()+", "+
			log.INFO.String()+", "+
			log.DEBUG.String()+". Defaulting to info.", log.WithUserLogLevel(userLogLevel))

		logLevel = log.INFO
	} else if logLevel == log.DEBUG {
		logger.Info(`Log level set to "debug". Performance may be adversely impacted.`)
	}

	log.SetDefaultLevel(logLevel)
}

// LogEncoding maps the log format option to a log encoding. Unknown values fall back to console.
func LogEncoding(format string) log.Encoding {
	if strings.EqualFold(format, log.JSON) {
		return log.JSON
	}

	return log.Console
}
