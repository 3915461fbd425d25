/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Command zcred-rest runs the zcred issuer and verifier REST service.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zcred/vcs/cmd/vc-rest/startcmd"
	"github.com/zcred/vcs/internal/pkg/log"
)

var logger = log.New("zcred-rest")

// Version is set with -ldflags at build time.
var Version string

func main() {
	rootCmd := &cobra.Command{
		Use:           "zcred-rest",
		Short:         "zcred issuer and verifier service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(startcmd.GetStartCmd(
		startcmd.WithVersion(Version),
		startcmd.WithServerVersion(os.Getenv("ZCRED_SERVER_VERSION")),
	))

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("zcred-rest failed", log.WithError(err))
	}
}
