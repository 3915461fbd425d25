/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zcred/vcs/cmd/common"
	cmdutils "github.com/zcred/vcs/internal/pkg/utils/cmd"
	"github.com/zcred/vcs/pkg/dataprotect"
	"github.com/zcred/vcs/pkg/event/spi"
	"github.com/zcred/vcs/pkg/kms"
	"github.com/zcred/vcs/pkg/observability/tracing"
	"github.com/zcred/vcs/pkg/pow"
	profilereader "github.com/zcred/vcs/pkg/profile/reader/file"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "URL to run the zcred instance on. Format: HostName:Port. " +
		commonEnvVarUsageText + hostURLEnvKey
	hostURLEnvKey = "ZCRED_HOST_URL"

	hostURLExternalFlagName      = "host-url-external"
	hostURLExternalFlagShorthand = "x"
	hostURLExternalEnvKey        = "ZCRED_HOST_URL_EXTERNAL"
	hostURLExternalFlagUsage     = "This is the URL for the host server as seen externally. Format: http://<HOST>:<PORT>." +
		" Verification redirect and proposal URLs are built from it. If not provided, http://<host-url> is used. " +
		commonEnvVarUsageText + hostURLExternalEnvKey

	modeFlagName      = "mode"
	modeFlagShorthand = "m"
	modeFlagUsage     = "Mode in which the zcred service will run. Possible values: " +
		"['issuer', 'verifier', 'combined'] (default: combined). " + commonEnvVarUsageText + modeEnvKey
	modeEnvKey = "ZCRED_MODE"

	masterSecretFlagName  = "master-secret"
	masterSecretEnvKey    = "ZCRED_MASTER_SECRET" //nolint: gosec
	masterSecretFlagUsage = "Hex encoded secret of at least 32 bytes. Session ids, access tokens, the session " +
		"encryption key and the local signing key are derived from it. " + commonEnvVarUsageText + masterSecretEnvKey

	sessionTTLFlagName  = "session-ttl"
	sessionTTLEnvKey    = "ZCRED_SESSION_TTL"
	sessionTTLFlagUsage = "Lifetime of issuance and verification sessions. Defaults to 1h. " +
		commonEnvVarUsageText + sessionTTLEnvKey

	sessionStoreTypeFlagName  = "session-store-type"
	sessionStoreTypeEnvKey    = "ZCRED_SESSION_STORE_TYPE"
	sessionStoreTypeFlagUsage = "Session store. Supported options: mem, redis. Defaults to mem. " +
		commonEnvVarUsageText + sessionStoreTypeEnvKey

	sessionEncryptionFlagName  = "session-encryption"
	sessionEncryptionEnvKey    = "ZCRED_SESSION_ENCRYPTION"
	sessionEncryptionFlagUsage = "Seal redis session values with AES-GCM. Defaults to true. " +
		commonEnvVarUsageText + sessionEncryptionEnvKey

	sessionCompressionFlagName  = "session-compression"
	sessionCompressionEnvKey    = "ZCRED_SESSION_COMPRESSION"
	sessionCompressionFlagUsage = "Compress redis session values before sealing. Supported options: zstd, gzip, none." +
		" Defaults to none. " + commonEnvVarUsageText + sessionCompressionEnvKey

	redisAddrsFlagName  = "redis-addrs"
	redisAddrsEnvKey    = "ZCRED_REDIS_ADDRS"
	redisAddrsFlagUsage = "Comma-Separated list of redis addresses. " + commonEnvVarUsageText + redisAddrsEnvKey

	redisMasterNameFlagName  = "redis-master-name"
	redisMasterNameEnvKey    = "ZCRED_REDIS_MASTER_NAME"
	redisMasterNameFlagUsage = "Redis sentinel master name. " + commonEnvVarUsageText + redisMasterNameEnvKey

	redisPasswordFlagName  = "redis-password"
	redisPasswordEnvKey    = "ZCRED_REDIS_PASSWORD" //nolint: gosec
	redisPasswordFlagUsage = "Redis password. " + commonEnvVarUsageText + redisPasswordEnvKey

	redisDisableTLSFlagName  = "redis-disable-tls"
	redisDisableTLSEnvKey    = "ZCRED_REDIS_DISABLE_TLS"
	redisDisableTLSFlagUsage = "Connect to redis without TLS. Defaults to false. " +
		commonEnvVarUsageText + redisDisableTLSEnvKey

	resultStoreTypeFlagName  = "result-store-type"
	resultStoreTypeEnvKey    = "ZCRED_RESULT_STORE_TYPE"
	resultStoreTypeFlagUsage = "Verification result store. Supported options: mem, mongodb, s3. Defaults to mem. " +
		commonEnvVarUsageText + resultStoreTypeEnvKey

	jalStoreTypeFlagName  = "jal-store-type"
	jalStoreTypeEnvKey    = "ZCRED_JAL_STORE_TYPE"
	jalStoreTypeFlagUsage = "JAL program store. Supported options: mem, mongodb. Defaults to mem. " +
		commonEnvVarUsageText + jalStoreTypeEnvKey

	s3BucketFlagName  = "result-store-s3-bucket"
	s3BucketEnvKey    = "ZCRED_RESULT_STORE_S3_BUCKET"
	s3BucketFlagUsage = "S3 bucket of the s3 result store. " + commonEnvVarUsageText + s3BucketEnvKey

	s3RegionFlagName  = "result-store-s3-region"
	s3RegionEnvKey    = "ZCRED_RESULT_STORE_S3_REGION"
	s3RegionFlagUsage = "S3 region of the s3 result store. " + commonEnvVarUsageText + s3RegionEnvKey

	s3HostNameFlagName  = "result-store-s3-hostname"
	s3HostNameEnvKey    = "ZCRED_RESULT_STORE_S3_HOSTNAME"
	s3HostNameFlagUsage = "Optional S3 compatible endpoint of the s3 result store. " +
		commonEnvVarUsageText + s3HostNameEnvKey

	kmsTypeFlagName  = "kms-type"
	kmsTypeEnvKey    = "ZCRED_KMS_TYPE"
	kmsTypeFlagUsage = "Where the JWS signing key lives. Supported options: local, aws. Defaults to local. " +
		commonEnvVarUsageText + kmsTypeEnvKey

	kmsKeyURIFlagName  = "kms-key-uri"
	kmsKeyURIEnvKey    = "ZCRED_KMS_KEY_URI"
	kmsKeyURIFlagUsage = "AWS KMS key id, alias or aws-kms:// URI. Required for aws. " +
		commonEnvVarUsageText + kmsKeyURIEnvKey

	kmsKeyIDFlagName  = "kms-key-id"
	kmsKeyIDEnvKey    = "ZCRED_KMS_KEY_ID"
	kmsKeyIDFlagUsage = "Key id published as the JWS kid. Defaults to the JWK thumbprint. " +
		commonEnvVarUsageText + kmsKeyIDEnvKey

	kmsEndpointFlagName  = "kms-endpoint"
	kmsEndpointEnvKey    = "ZCRED_KMS_ENDPOINT"
	kmsEndpointFlagUsage = "Optional AWS KMS endpoint. " + commonEnvVarUsageText + kmsEndpointEnvKey

	kmsRegionFlagName  = "kms-region"
	kmsRegionEnvKey    = "ZCRED_KMS_REGION"
	kmsRegionFlagUsage = "AWS KMS region. " + commonEnvVarUsageText + kmsRegionEnvKey

	zkVerifierURLFlagName  = "zk-verifier-url"
	zkVerifierURLEnvKey    = "ZCRED_ZK_VERIFIER_URL"
	zkVerifierURLFlagUsage = "URL of the zero-knowledge proof verifier. Required in verifier mode. " +
		commonEnvVarUsageText + zkVerifierURLEnvKey

	proverURLFlagName  = "prover-url"
	proverURLEnvKey    = "ZCRED_PROVER_URL"
	proverURLFlagUsage = "URL of the prover sidecar signing mina and ethereum proofs. " +
		commonEnvVarUsageText + proverURLEnvKey

	minaSignerURLFlagName  = "mina-signer-url"
	minaSignerURLEnvKey    = "ZCRED_MINA_SIGNER_URL"
	minaSignerURLFlagUsage = "URL of the sidecar verifying mina signatures. mina subjects are rejected without it. " +
		commonEnvVarUsageText + minaSignerURLEnvKey

	powDifficultyFlagName  = "pow-difficulty"
	powDifficultyEnvKey    = "ZCRED_POW_DIFFICULTY"
	powDifficultyFlagUsage = "Leading zeros a proof of work must have. Defaults to 5. " +
		commonEnvVarUsageText + powDifficultyEnvKey

	tokenFlagName  = "api-token"
	tokenEnvKey    = "ZCRED_API_TOKEN" //nolint: gosec
	tokenFlagUsage = "X-API-Key value required to register JAL programs. Registration is closed without it. " +
		commonEnvVarUsageText + tokenEnvKey

	httpTimeoutFlagName  = "http-timeout"
	httpTimeoutEnvKey    = "ZCRED_HTTP_TIMEOUT"
	httpTimeoutFlagUsage = "Timeout of calls to KYC providers and sidecars. Defaults to 30s. " +
		commonEnvVarUsageText + httpTimeoutEnvKey

	httpMaxRetriesFlagName  = "http-max-retries"
	httpMaxRetriesEnvKey    = "ZCRED_HTTP_MAX_RETRIES"
	httpMaxRetriesFlagUsage = "Retries of failed GET calls and of sidecar verification and signing calls. " +
		"POST to KYC providers is never retried. Defaults to 3. " +
		commonEnvVarUsageText + httpMaxRetriesEnvKey

	eventPublisherFlagName  = "event-publisher"
	eventPublisherEnvKey    = "ZCRED_EVENT_PUBLISHER"
	eventPublisherFlagUsage = "Where events go besides the audit log. Supported options: none, redis. Defaults to none. " +
		commonEnvVarUsageText + eventPublisherEnvKey

	issuerTopicFlagName  = "issuer-event-topic"
	issuerTopicEnvKey    = "ZCRED_ISSUER_EVENT_TOPIC"
	issuerTopicFlagUsage = "The name of the issuer event topic. " + commonEnvVarUsageText + issuerTopicEnvKey

	verifierTopicFlagName  = "verifier-event-topic"
	verifierTopicEnvKey    = "ZCRED_VERIFIER_EVENT_TOPIC"
	verifierTopicFlagUsage = "The name of the verifier event topic. " + commonEnvVarUsageText + verifierTopicEnvKey

	metricsProviderFlagName         = "metrics-provider-name"
	metricsProviderEnvKey           = "ZCRED_METRICS_PROVIDER_NAME"
	allowedMetricsProviderFlagUsage = "The metrics provider name (for example: 'prometheus' etc.). " +
		commonEnvVarUsageText + metricsProviderEnvKey

	tracingProviderFlagName  = "tracing-provider"
	tracingProviderEnvKey    = "ZCRED_TRACING_PROVIDER"
	tracingProviderFlagUsage = "Tracing exporter. Supported options: JAEGER, STDOUT. Tracing is off if not set. " +
		commonEnvVarUsageText + tracingProviderEnvKey

	tracingServiceNameFlagName  = "tracing-service-name"
	tracingServiceNameEnvKey    = "ZCRED_TRACING_SERVICE_NAME"
	tracingServiceNameFlagUsage = "Service name reported with traces. Defaults to zcred. " +
		commonEnvVarUsageText + tracingServiceNameEnvKey

	tlsSystemCertPoolFlagName  = "tls-systemcertpool"
	tlsSystemCertPoolFlagUsage = "Use system certificate pool." +
		" Possible values [true] [false]. Defaults to false if not set. " + commonEnvVarUsageText + tlsSystemCertPoolEnvKey
	tlsSystemCertPoolEnvKey = "ZCRED_TLS_SYSTEMCERTPOOL"

	tlsCACertsFlagName  = "tls-cacerts"
	tlsCACertsFlagUsage = "Comma-Separated list of ca certs path." + commonEnvVarUsageText + tlsCACertsEnvKey
	tlsCACertsEnvKey    = "ZCRED_TLS_CACERTS"

	tlsCertificateFlagName  = "tls-certificate"
	tlsCertificateFlagUsage = "TLS certificate for zcred server. " + commonEnvVarUsageText + tlsCertificateEnvKey
	tlsCertificateEnvKey    = "ZCRED_TLS_CERTIFICATE"

	tlsKeyFlagName  = "tls-key"
	tlsKeyFlagUsage = "TLS key for zcred server. " + commonEnvVarUsageText + tlsKeyEnvKey
	tlsKeyEnvKey    = "ZCRED_TLS_KEY"
)

const (
	storeTypeMem     = "mem"
	storeTypeRedis   = "redis"
	storeTypeMongoDB = "mongodb"
	storeTypeS3      = "s3"

	eventPublisherNone  = "none"
	eventPublisherRedis = "redis"


	defaultSessionTTL         = time.Hour
	defaultHTTPTimeout        = 30 * time.Second
	defaultHTTPMaxRetries     = 3
	defaultTracingServiceName = "zcred"
)

// mode in which to run the zcred service
type mode string

const (
	verifier mode = "verifier"
	issuer   mode = "issuer"
	combined mode = "combined"
)

func (m mode) issuer() bool {
	return m == issuer || m == combined
}

func (m mode) verifier() bool {
	return m == verifier || m == combined
}

type startupParameters struct {
	hostURL             string
	hostURLExternal     string
	mode                mode
	masterSecret        []byte
	sessionTTL          time.Duration
	sessionStoreType    string
	sessionEncryption   bool
	sessionCompression  string
	redisParameters     *redisParameters
	resultStoreType     string
	jalStoreType        string
	s3Parameters        *s3Parameters
	dbParameters        *common.DBParameters
	kmsParameters       *kmsParameters
	zkVerifierURL       string
	proverURL           string
	minaSignerURL       string
	powDifficulty       int
	token               string
	httpTimeout         time.Duration
	httpMaxRetries      int
	eventPublisher      string
	issuerEventTopic    string
	verifierEventTopic  string
	metricsProviderName string
	tracingParams       *tracingParams
	tlsParameters       *tlsParameters
	logLevel            string
	logFormat           string
}

type redisParameters struct {
	addrs      []string
	masterName string
	password   string
	disableTLS bool
}

type s3Parameters struct {
	bucket   string
	region   string
	hostName string
}

type kmsParameters struct {
	kmsType     kms.Type
	keyURI      string
	keyID       string
	kmsEndpoint string
	kmsRegion   string
}

type tracingParams struct {
	exporter    tracing.SpanExporterType
	serviceName string
}

type tlsParameters struct {
	systemCertPool bool
	caCerts        []string
	serveCertPath  string
	serveKeyPath   string
}

// nolint: gocyclo,funlen
func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	hostURLExternal := cmdutils.GetUserSetOptionalVarFromString(cmd, hostURLExternalFlagName, hostURLExternalEnvKey)
	if hostURLExternal == "" {
		hostURLExternal = "http://" + hostURL
	}

	mode, err := getMode(cmd)
	if err != nil {
		return nil, err
	}

	masterSecret, err := getMasterSecret(cmd)
	if err != nil {
		return nil, err
	}

	sessionTTL, err := cmdutils.GetDuration(cmd, sessionTTLFlagName, sessionTTLEnvKey, defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	if sessionTTL <= 0 {
		return nil, fmt.Errorf("%s must be positive", sessionTTLFlagName)
	}

	sessionStoreType, err := getOption(cmd, sessionStoreTypeFlagName, sessionStoreTypeEnvKey, storeTypeMem,
		storeTypeMem, storeTypeRedis)
	if err != nil {
		return nil, err
	}

	sessionEncryption, err := cmdutils.GetBool(cmd, sessionEncryptionFlagName, sessionEncryptionEnvKey, true)
	if err != nil {
		return nil, err
	}

	sessionCompression, err := getOption(cmd, sessionCompressionFlagName, sessionCompressionEnvKey, dataprotect.CompressionNone,
		dataprotect.CompressionNone, dataprotect.CompressionZstd, dataprotect.CompressionGzip)
	if err != nil {
		return nil, err
	}

	resultStoreType, err := getOption(cmd, resultStoreTypeFlagName, resultStoreTypeEnvKey, storeTypeMem,
		storeTypeMem, storeTypeMongoDB, storeTypeS3)
	if err != nil {
		return nil, err
	}

	jalStoreType, err := getOption(cmd, jalStoreTypeFlagName, jalStoreTypeEnvKey, storeTypeMem,
		storeTypeMem, storeTypeMongoDB)
	if err != nil {
		return nil, err
	}

	eventPublisher, err := getOption(cmd, eventPublisherFlagName, eventPublisherEnvKey, eventPublisherNone,
		eventPublisherNone, eventPublisherRedis)
	if err != nil {
		return nil, err
	}

	redisParams, err := getRedisParameters(cmd)
	if err != nil {
		return nil, err
	}

	if len(redisParams.addrs) == 0 && (sessionStoreType == storeTypeRedis || eventPublisher == eventPublisherRedis) {
		return nil, fmt.Errorf("%s is required for the redis session store and event publisher", redisAddrsFlagName)
	}

	s3Params := &s3Parameters{
		bucket:   cmdutils.GetUserSetOptionalVarFromString(cmd, s3BucketFlagName, s3BucketEnvKey),
		region:   cmdutils.GetUserSetOptionalVarFromString(cmd, s3RegionFlagName, s3RegionEnvKey),
		hostName: cmdutils.GetUserSetOptionalVarFromString(cmd, s3HostNameFlagName, s3HostNameEnvKey),
	}

	if resultStoreType == storeTypeS3 && s3Params.bucket == "" {
		return nil, fmt.Errorf("%s is required for the s3 result store", s3BucketFlagName)
	}

	dbParams, err := common.DBParams(cmd)
	if err != nil {
		return nil, err
	}

	if dbParams.URL == "" && (resultStoreType == storeTypeMongoDB || jalStoreType == storeTypeMongoDB) {
		return nil, fmt.Errorf("%s is required for the mongodb stores", common.DatabaseURLFlagName)
	}

	kmsParams, err := getKMSParameters(cmd)
	if err != nil {
		return nil, err
	}

	zkVerifierURL, err := cmdutils.GetUserSetVarFromString(cmd, zkVerifierURLFlagName, zkVerifierURLEnvKey,
		!mode.verifier())
	if err != nil {
		return nil, err
	}

	powDifficulty, err := cmdutils.GetInt(cmd, powDifficultyFlagName, powDifficultyEnvKey, pow.DefaultDifficulty)
	if err != nil {
		return nil, err
	}

	httpTimeout, err := cmdutils.GetDuration(cmd, httpTimeoutFlagName, httpTimeoutEnvKey, defaultHTTPTimeout)
	if err != nil {
		return nil, err
	}

	httpMaxRetries, err := cmdutils.GetInt(cmd, httpMaxRetriesFlagName, httpMaxRetriesEnvKey, defaultHTTPMaxRetries)
	if err != nil {
		return nil, err
	}

	issuerTopic := cmdutils.GetUserSetOptionalVarFromString(cmd, issuerTopicFlagName, issuerTopicEnvKey)
	if issuerTopic == "" {
		issuerTopic = spi.IssuerEventTopic
	}

	verifierTopic := cmdutils.GetUserSetOptionalVarFromString(cmd, verifierTopicFlagName, verifierTopicEnvKey)
	if verifierTopic == "" {
		verifierTopic = spi.VerifierEventTopic
	}

	tracingParams, err := getTracingParams(cmd)
	if err != nil {
		return nil, err
	}

	tlsParams, err := getTLS(cmd)
	if err != nil {
		return nil, err
	}

	return &startupParameters{
		hostURL:             hostURL,
		hostURLExternal:     strings.TrimSuffix(hostURLExternal, "/"),
		mode:                mode,
		masterSecret:        masterSecret,
		sessionTTL:          sessionTTL,
		sessionStoreType:    sessionStoreType,
		sessionEncryption:   sessionEncryption,
		sessionCompression:  sessionCompression,
		redisParameters:     redisParams,
		resultStoreType:     resultStoreType,
		jalStoreType:        jalStoreType,
		s3Parameters:        s3Params,
		dbParameters:        dbParams,
		kmsParameters:       kmsParams,
		zkVerifierURL:       zkVerifierURL,
		proverURL:           cmdutils.GetUserSetOptionalVarFromString(cmd, proverURLFlagName, proverURLEnvKey),
		minaSignerURL:       cmdutils.GetUserSetOptionalVarFromString(cmd, minaSignerURLFlagName, minaSignerURLEnvKey),
		powDifficulty:       powDifficulty,
		token:               cmdutils.GetUserSetOptionalVarFromString(cmd, tokenFlagName, tokenEnvKey),
		httpTimeout:         httpTimeout,
		httpMaxRetries:      httpMaxRetries,
		eventPublisher:      eventPublisher,
		issuerEventTopic:    issuerTopic,
		verifierEventTopic:  verifierTopic,
		metricsProviderName: cmdutils.GetUserSetOptionalVarFromString(cmd, metricsProviderFlagName, metricsProviderEnvKey),
		tracingParams:       tracingParams,
		tlsParameters:       tlsParams,
		logLevel:            cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey),
		logFormat:           cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogFormatFlagName, common.LogFormatEnvKey),
	}, nil
}

func getMode(cmd *cobra.Command) (mode, error) {
	m := mode(cmdutils.GetUserSetOptionalVarFromString(cmd, modeFlagName, modeEnvKey))

	switch m {
	case "":
		return combined, nil
	case issuer, verifier, combined:
		return m, nil
	default:
		return "", fmt.Errorf("unsupported mode: %s", m)
	}
}

func getMasterSecret(cmd *cobra.Command) ([]byte, error) {
	value, err := cmdutils.GetUserSetVarFromString(cmd, masterSecretFlagName, masterSecretEnvKey, false)
	if err != nil {
		return nil, err
	}

	secret, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%s must be hex encoded: %w", masterSecretFlagName, err)
	}

	return secret, nil
}

// getOption reads an optional enumerated value, case insensitive.
func getOption(cmd *cobra.Command, flagName, envKey, defaultValue string, allowed ...string) (string, error) {
	value := strings.ToLower(cmdutils.GetUserSetOptionalVarFromString(cmd, flagName, envKey))
	if value == "" {
		return defaultValue, nil
	}

	for _, a := range allowed {
		if value == a {
			return value, nil
		}
	}

	return "", fmt.Errorf("unsupported %s: %s", flagName, value)
}

func getRedisParameters(cmd *cobra.Command) (*redisParameters, error) {
	disableTLS, err := cmdutils.GetBool(cmd, redisDisableTLSFlagName, redisDisableTLSEnvKey, false)
	if err != nil {
		return nil, err
	}

	return &redisParameters{
		addrs:      cmdutils.GetUserSetOptionalCSVVar(cmd, redisAddrsFlagName, redisAddrsEnvKey),
		masterName: cmdutils.GetUserSetOptionalVarFromString(cmd, redisMasterNameFlagName, redisMasterNameEnvKey),
		password:   cmdutils.GetUserSetOptionalVarFromString(cmd, redisPasswordFlagName, redisPasswordEnvKey),
		disableTLS: disableTLS,
	}, nil
}

func getKMSParameters(cmd *cobra.Command) (*kmsParameters, error) {
	kmsType := kms.Type(strings.ToLower(cmdutils.GetUserSetOptionalVarFromString(cmd, kmsTypeFlagName, kmsTypeEnvKey)))
	if kmsType == "" {
		kmsType = kms.Local
	}

	if !supportedKmsType(kmsType) {
		return nil, fmt.Errorf("unsupported kms type: %s", kmsType)
	}

	keyURI, err := cmdutils.GetUserSetVarFromString(cmd, kmsKeyURIFlagName, kmsKeyURIEnvKey, kmsType != kms.AWS)
	if err != nil {
		return nil, err
	}

	return &kmsParameters{
		kmsType:     kmsType,
		keyURI:      keyURI,
		keyID:       cmdutils.GetUserSetOptionalVarFromString(cmd, kmsKeyIDFlagName, kmsKeyIDEnvKey),
		kmsEndpoint: cmdutils.GetUserSetOptionalVarFromString(cmd, kmsEndpointFlagName, kmsEndpointEnvKey),
		kmsRegion:   cmdutils.GetUserSetOptionalVarFromString(cmd, kmsRegionFlagName, kmsRegionEnvKey),
	}, nil
}

func supportedKmsType(kmsType kms.Type) bool {
	return kmsType == kms.Local || kmsType == kms.AWS
}

func getTracingParams(cmd *cobra.Command) (*tracingParams, error) {
	serviceName := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingServiceNameFlagName, tracingServiceNameEnvKey)
	if serviceName == "" {
		serviceName = defaultTracingServiceName
	}

	exporter := strings.ToUpper(cmdutils.GetUserSetOptionalVarFromString(cmd, tracingProviderFlagName,
		tracingProviderEnvKey))

	if !tracing.IsExportedSupported(exporter) {
		return nil, fmt.Errorf("unsupported tracing provider: %s", exporter)
	}

	return &tracingParams{
		exporter:    exporter,
		serviceName: serviceName,
	}, nil
}

func getTLS(cmd *cobra.Command) (*tlsParameters, error) {
	tlsSystemCertPool, err := cmdutils.GetBool(cmd, tlsSystemCertPoolFlagName, tlsSystemCertPoolEnvKey, false)
	if err != nil {
		return nil, err
	}

	return &tlsParameters{
		systemCertPool: tlsSystemCertPool,
		caCerts:        cmdutils.GetUserSetOptionalCSVVar(cmd, tlsCACertsFlagName, tlsCACertsEnvKey),
		serveCertPath:  cmdutils.GetUserSetOptionalVarFromString(cmd, tlsCertificateFlagName, tlsCertificateEnvKey),
		serveKeyPath:   cmdutils.GetUserSetOptionalVarFromString(cmd, tlsKeyFlagName, tlsKeyEnvKey),
	}, nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringP(hostURLExternalFlagName, hostURLExternalFlagShorthand, "", hostURLExternalFlagUsage)
	startCmd.Flags().StringP(modeFlagName, modeFlagShorthand, "", modeFlagUsage)
	startCmd.Flags().String(masterSecretFlagName, "", masterSecretFlagUsage)
	startCmd.Flags().String(sessionTTLFlagName, "", sessionTTLFlagUsage)
	startCmd.Flags().String(sessionStoreTypeFlagName, "", sessionStoreTypeFlagUsage)
	startCmd.Flags().String(sessionEncryptionFlagName, "", sessionEncryptionFlagUsage)
	startCmd.Flags().String(sessionCompressionFlagName, "", sessionCompressionFlagUsage)
	startCmd.Flags().StringSlice(redisAddrsFlagName, []string{}, redisAddrsFlagUsage)
	startCmd.Flags().String(redisMasterNameFlagName, "", redisMasterNameFlagUsage)
	startCmd.Flags().String(redisPasswordFlagName, "", redisPasswordFlagUsage)
	startCmd.Flags().String(redisDisableTLSFlagName, "", redisDisableTLSFlagUsage)
	startCmd.Flags().String(resultStoreTypeFlagName, "", resultStoreTypeFlagUsage)
	startCmd.Flags().String(jalStoreTypeFlagName, "", jalStoreTypeFlagUsage)
	startCmd.Flags().String(s3BucketFlagName, "", s3BucketFlagUsage)
	startCmd.Flags().String(s3RegionFlagName, "", s3RegionFlagUsage)
	startCmd.Flags().String(s3HostNameFlagName, "", s3HostNameFlagUsage)
	startCmd.Flags().String(kmsTypeFlagName, "", kmsTypeFlagUsage)
	startCmd.Flags().String(kmsKeyURIFlagName, "", kmsKeyURIFlagUsage)
	startCmd.Flags().String(kmsKeyIDFlagName, "", kmsKeyIDFlagUsage)
	startCmd.Flags().String(kmsEndpointFlagName, "", kmsEndpointFlagUsage)
	startCmd.Flags().String(kmsRegionFlagName, "", kmsRegionFlagUsage)
	startCmd.Flags().String(zkVerifierURLFlagName, "", zkVerifierURLFlagUsage)
	startCmd.Flags().String(proverURLFlagName, "", proverURLFlagUsage)
	startCmd.Flags().String(minaSignerURLFlagName, "", minaSignerURLFlagUsage)
	startCmd.Flags().String(powDifficultyFlagName, "", powDifficultyFlagUsage)
	startCmd.Flags().String(tokenFlagName, "", tokenFlagUsage)
	startCmd.Flags().String(httpTimeoutFlagName, "", httpTimeoutFlagUsage)
	startCmd.Flags().String(httpMaxRetriesFlagName, "", httpMaxRetriesFlagUsage)
	startCmd.Flags().String(eventPublisherFlagName, "", eventPublisherFlagUsage)
	startCmd.Flags().String(issuerTopicFlagName, "", issuerTopicFlagUsage)
	startCmd.Flags().String(verifierTopicFlagName, "", verifierTopicFlagUsage)
	startCmd.Flags().String(metricsProviderFlagName, "", allowedMetricsProviderFlagUsage)
	startCmd.Flags().String(tracingProviderFlagName, "", tracingProviderFlagUsage)
	startCmd.Flags().String(tracingServiceNameFlagName, "", tracingServiceNameFlagUsage)
	startCmd.Flags().String(tlsSystemCertPoolFlagName, "", tlsSystemCertPoolFlagUsage)
	startCmd.Flags().StringSlice(tlsCACertsFlagName, []string{}, tlsCACertsFlagUsage)
	startCmd.Flags().String(tlsCertificateFlagName, "", tlsCertificateFlagUsage)
	startCmd.Flags().String(tlsKeyFlagName, "", tlsKeyFlagUsage)
	startCmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelPrefixFlagUsage)
	startCmd.Flags().String(common.LogFormatFlagName, "", common.LogFormatFlagUsage)

	common.Flags(startCmd)
	profilereader.AddFlags(startCmd)
}
