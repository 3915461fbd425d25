/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xeipuuv/gojsonschema"

	"github.com/zcred/vcs/internal/pkg/log"
	cmdutils "github.com/zcred/vcs/internal/pkg/utils/cmd"
	profileapi "github.com/zcred/vcs/pkg/profile"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	profilesFilePathFlagName  = "profiles-file-path"
	profilesFilePathFlagUsage = "Issuer profiles json file path. " + commonEnvVarUsageText + profilesFilePathEnvKey
	profilesFilePathEnvKey    = "ZCRED_PROFILES_FILE_PATH"
)

var logger = log.New("profile-reader")

// Config contain config.
type Config struct {
	CMD *cobra.Command
}

// IssuerReader read issuer profiles.
type IssuerReader struct {
	issuers map[string]*profileapi.Issuer
}

type profile struct {
	IssuersData []*issuerProfile `json:"issuers"`
}

type issuerProfile struct {
	Data *profileapi.Issuer `json:"issuer,omitempty"`
}

// NewIssuerReader creates issuer Reader.
func NewIssuerReader(config *Config) (*IssuerReader, error) {
	profileJSONFile, err := cmdutils.GetUserSetVarFromString(config.CMD, profilesFilePathFlagName,
		profilesFilePathEnvKey, false)
	if err != nil {
		return nil, err
	}

	jsonBytes, err := os.ReadFile(filepath.Clean(profileJSONFile))
	if err != nil {
		return nil, err
	}

	return parseIssuers(jsonBytes)
}

func parseIssuers(jsonBytes []byte) (*IssuerReader, error) {
	// Secrets are usually kept out of the file and referenced as ${VAR}.
	expanded := os.ExpandEnv(string(jsonBytes))

	if err := validate(expanded); err != nil {
		return nil, err
	}

	var p profile
	if err := json.Unmarshal([]byte(expanded), &p); err != nil {
		return nil, err
	}

	r := IssuerReader{issuers: make(map[string]*profileapi.Issuer)}

	for _, v := range p.IssuersData {
		if _, ok := r.issuers[v.Data.ID]; ok {
			return nil, fmt.Errorf("issuer profile %s: duplicate id", v.Data.ID)
		}

		r.issuers[v.Data.ID] = v.Data

		logger.Info("create issuer profile successfully", log.WithIssuerID(v.Data.ID),
			log.WithProvider(v.Data.KYC.Name))
	}

	return &r, nil
}

func validate(doc string) error {
	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(profilesSchema),
		gojsonschema.NewStringLoader(doc))
	if err != nil {
		return fmt.Errorf("validate issuer profiles: %w", err)
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}

		return errors.New("invalid issuer profiles: " + strings.Join(msgs, "; "))
	}

	return nil
}

// GetProfile returns profile with given id.
func (p *IssuerReader) GetProfile(profileID profileapi.ID) (*profileapi.Issuer, error) {
	return p.issuers[profileID], nil
}

// GetAllProfiles returns all profiles ordered by id.
func (p *IssuerReader) GetAllProfiles() ([]*profileapi.Issuer, error) {
	ids := make([]string, 0, len(p.issuers))
	for id := range p.issuers {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	result := make([]*profileapi.Issuer, 0, len(ids))
	for _, id := range ids {
		result = append(result, p.issuers[id])
	}

	return result, nil
}

// AddFlags add flags in cmd.
func AddFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(profilesFilePathFlagName, "", "", profilesFilePathFlagUsage)
}
