/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	oapimw "github.com/deepmap/oapi-codegen/pkg/middleware"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/zcred/vcs/cmd/common"
	apidocs "github.com/zcred/vcs/docs/v1"
	"github.com/zcred/vcs/internal/pkg/jsonhttp"
	"github.com/zcred/vcs/internal/pkg/log"
	tlsutils "github.com/zcred/vcs/internal/pkg/utils/tls"
	"github.com/zcred/vcs/pkg/dataprotect"
	"github.com/zcred/vcs/pkg/event"
	"github.com/zcred/vcs/pkg/event/spi"
	"github.com/zcred/vcs/pkg/jal"
	"github.com/zcred/vcs/pkg/kdf"
	"github.com/zcred/vcs/pkg/kms"
	"github.com/zcred/vcs/pkg/kms/signer"
	"github.com/zcred/vcs/pkg/kyc"
	"github.com/zcred/vcs/pkg/observability/healthchecks"
	"github.com/zcred/vcs/pkg/observability/metrics"
	"github.com/zcred/vcs/pkg/observability/metrics/noop"
	metricsProvider "github.com/zcred/vcs/pkg/observability/metrics/prometheus"
	"github.com/zcred/vcs/pkg/observability/tracing"
	issuancetracing "github.com/zcred/vcs/pkg/observability/tracing/wrappers/issuance"
	verificationtracing "github.com/zcred/vcs/pkg/observability/tracing/wrappers/verification"
	"github.com/zcred/vcs/pkg/pow"
	profileapi "github.com/zcred/vcs/pkg/profile"
	profilereader "github.com/zcred/vcs/pkg/profile/reader/file"
	"github.com/zcred/vcs/pkg/prover"
	"github.com/zcred/vcs/pkg/restapi/resterr"
	"github.com/zcred/vcs/pkg/restapi/v1/healthcheck"
	issuerv1 "github.com/zcred/vcs/pkg/restapi/v1/issuer"
	jalv1 "github.com/zcred/vcs/pkg/restapi/v1/jal"
	"github.com/zcred/vcs/pkg/restapi/v1/logapi"
	verifierv1 "github.com/zcred/vcs/pkg/restapi/v1/verifier"
	"github.com/zcred/vcs/pkg/restapi/v1/version"
	"github.com/zcred/vcs/pkg/service/credential"
	"github.com/zcred/vcs/pkg/service/issuance"
	"github.com/zcred/vcs/pkg/service/verification"
	"github.com/zcred/vcs/pkg/sessionid"
	"github.com/zcred/vcs/pkg/signature"
	"github.com/zcred/vcs/pkg/signature/ethereum"
	"github.com/zcred/vcs/pkg/signature/mina"
	"github.com/zcred/vcs/pkg/signature/solana"
	"github.com/zcred/vcs/pkg/storage"
	memjalstore "github.com/zcred/vcs/pkg/storage/mem/jalstore"
	memresultstore "github.com/zcred/vcs/pkg/storage/mem/resultstore"
	memsessionstore "github.com/zcred/vcs/pkg/storage/mem/sessionstore"
	"github.com/zcred/vcs/pkg/storage/mongodb"
	mongojalstore "github.com/zcred/vcs/pkg/storage/mongodb/jalstore"
	mongoresultstore "github.com/zcred/vcs/pkg/storage/mongodb/resultstore"
	"github.com/zcred/vcs/pkg/storage/redis"
	redissessionstore "github.com/zcred/vcs/pkg/storage/redis/sessionstore"
	s3resultstore "github.com/zcred/vcs/pkg/storage/s3/resultstore"
	"github.com/zcred/vcs/pkg/zkverifier"
)

const (
	healthCheckEndpoint = "/healthcheck"
	eventChannelPrefix  = "zcred:events:"
	shutdownTimeout     = 10 * time.Second
	readHeaderTimeout   = 10 * time.Second

	issuanceSessionPrefix     = "zcred:issuance:"
	verificationSessionPrefix = "zcred:verification:"
	verificationChallengePfx  = "zcred:challenge:"
)

var logger = log.New("zcred-rest")

type httpServer interface {
	ListenAndServe() error
	ListenAndServeTLS(certFile, keyFile string) error
	Shutdown(ctx context.Context) error
}

type eventPublisher interface {
	Publish(ctx context.Context, topic string, messages ...*spi.Event) error
}

type verificationResultStore interface {
	Put(ctx context.Context, result *verification.Result) error
}

type startOptions struct {
	server        httpServer
	version       string
	serverVersion string
}

// StartOpts configures the start command.
type StartOpts func(opts *startOptions)

// WithHTTPServer sets the server that serves the router. The router is not attached to it.
func WithHTTPServer(server httpServer) StartOpts {
	return func(opts *startOptions) {
		opts.server = server
	}
}

// WithVersion sets the build version reported at /version.
func WithVersion(version string) StartOpts {
	return func(opts *startOptions) {
		opts.version = version
	}
}

// WithServerVersion sets the deployment version reported at /version/system.
func WithServerVersion(version string) StartOpts {
	return func(opts *startOptions) {
		opts.serverVersion = version
	}
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(opts ...StartOpts) *cobra.Command {
	startCmd := createStartCmd(opts...)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(opts ...StartOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start zcred-rest",
		Long:  "Start zcred-rest, the zcred issuer and verifier service",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := getStartupParameters(cmd)
			if err != nil {
				return fmt.Errorf("failed to get startup parameters: %w", err)
			}

			conf := &startOptions{}
			for _, opt := range opts {
				opt(conf)
			}

			var profiles []*profileapi.Issuer

			if params.mode.issuer() {
				reader, readErr := profilereader.NewIssuerReader(&profilereader.Config{CMD: cmd})
				if readErr != nil {
					return fmt.Errorf("failed to read issuer profiles: %w", readErr)
				}

				if profiles, err = reader.GetAllProfiles(); err != nil {
					return err
				}
			}

			return run(params, profiles, conf)
		},
	}
}

func run(params *startupParameters, profiles []*profileapi.Issuer, conf *startOptions) error {
	common.SetDefaultLogLevel(logger, params.logLevel)

	shutdownTracing, tracer, err := tracing.Initialize(params.tracingParams.exporter, params.tracingParams.serviceName)
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}

	defer shutdownTracing()

	e, cleanup, err := buildEchoHandler(params, profiles, conf, tracer)
	if err != nil {
		return err
	}

	logger.Info("Components initialized", log.WithStoreType(params.sessionStoreType))

	defer cleanup()

	srv := conf.server
	if srv == nil {
		srv = &http.Server{
			Addr:              params.hostURL,
			Handler:           e,
			ReadHeaderTimeout: readHeaderTimeout,
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Warn("Failed to shut down the server", log.WithError(shutdownErr))
		}
	}()

	logger.Info("Starting zcred-rest", log.WithHostURL(params.hostURL), log.WithService(string(params.mode)))

	if params.tlsParameters.serveCertPath != "" && params.tlsParameters.serveKeyPath != "" {
		err = srv.ListenAndServeTLS(params.tlsParameters.serveCertPath, params.tlsParameters.serveKeyPath)
	} else {
		err = srv.ListenAndServe()
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped: %w", err)
	}

	return nil
}

type backends struct {
	redis   *redis.Client
	mongodb *mongodb.Client
}

// healthConfig leaves unused backends nil so they are not checked.
func (b *backends) healthConfig() *healthchecks.Config {
	cfg := &healthchecks.Config{}

	if b.redis != nil {
		cfg.Redis = b.redis
	}

	if b.mongodb != nil {
		cfg.MongoDB = b.mongodb
	}

	return cfg
}

func (b *backends) close() {
	if b.redis != nil {
		if err := b.redis.Close(); err != nil {
			logger.Warn("Failed to close redis client", log.WithError(err))
		}
	}

	if b.mongodb != nil {
		if err := b.mongodb.Close(); err != nil {
			logger.Warn("Failed to close mongodb client", log.WithError(err))
		}
	}
}

// nolint: gocyclo,funlen
func buildEchoHandler(
	params *startupParameters,
	profiles []*profileapi.Issuer,
	conf *startOptions,
	tracer trace.Tracer,
) (*echo.Echo, func(), error) {
	var closers []func()

	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	fail := func(err error) (*echo.Echo, func(), error) {
		cleanup()

		return nil, nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = resterr.HTTPErrorHandler

	e.Use(echomw.Recover())

	if params.tracingParams.exporter != tracing.None {
		e.Use(otelecho.Middleware(params.tracingParams.serviceName))
	}

	swagger, err := openapi3.NewLoader().LoadFromData(apidocs.OpenAPI)
	if err != nil {
		return fail(fmt.Errorf("load openapi document: %w", err))
	}

	// Host and base path are deployment specific.
	swagger.Servers = nil

	e.Use(oapimw.OapiRequestValidatorWithOptions(swagger, &oapimw.Options{
		Options: openapi3filter.Options{
			// Controllers authenticate; the validator checks shapes only.
			AuthenticationFunc: func(context.Context, *openapi3filter.AuthenticationInput) error {
				return nil
			},
		},
		Skipper: OApiSkipper,
	}))

	ready := newReadinessController(e)

	tlsConfig, err := createTLSConfig(params.tlsParameters)
	if err != nil {
		return fail(err)
	}

	metricsImpl, err := createMetrics(params.metricsProviderName, e)
	if err != nil {
		return fail(err)
	}

	deriver, err := kdf.New(params.masterSecret)
	if err != nil {
		return fail(err)
	}

	be, err := createBackends(params, tlsConfig)
	if err != nil {
		return fail(err)
	}

	closers = append(closers, be.close)

	httpClient := &http.Client{
		Timeout: params.httpTimeout,
		Transport: otelhttp.NewTransport(&http.Transport{
			TLSClientConfig: tlsConfig,
		}),
	}

	// KYC providers create sessions on POST, the sidecars only compute
	jsonClient := jsonhttp.New(httpClient, jsonhttp.WithMaxRetries(uint64(params.httpMaxRetries)))
	computeClient := jsonhttp.New(httpClient, jsonhttp.WithMaxRetries(uint64(params.httpMaxRetries)),
		jsonhttp.WithRetryPost())

	jwsSigner, err := kms.NewRegistry(&kms.Config{
		KMSType:  params.kmsParameters.kmsType,
		Endpoint: params.kmsParameters.kmsEndpoint,
		Region:   params.kmsParameters.kmsRegion,
		KeyURI:   params.kmsParameters.keyURI,
		KeyID:    params.kmsParameters.keyID,
		Seed:     deriver.MustDerive(kdf.PurposeSigningKey),
	}, metricsImpl).GetSigner(context.Background(), nil)
	if err != nil {
		return fail(fmt.Errorf("create jws signer: %w", err))
	}

	eventSvc, eventClose, err := createEventService(params, be.redis)
	if err != nil {
		return fail(err)
	}

	closers = append(closers, eventClose)

	protector, err := createSessionProtector(params, deriver)
	if err != nil {
		return fail(err)
	}

	gate := createSignatureGate(params, computeClient)

	if params.mode.issuer() {
		issuers, issuersErr := createIssuers(profiles, jsonClient)
		if issuersErr != nil {
			return fail(issuersErr)
		}

		proofs, proverErr := createProver(params, jwsSigner, computeClient)
		if proverErr != nil {
			return fail(proverErr)
		}

		if err = checkProofTypes(issuers, proofs.Types()); err != nil {
			return fail(err)
		}

		sessions := newSessionStore[*issuance.Session](params, be.redis, issuanceSessionPrefix, protector)
		closers = append(closers, sessions.Dispose)

		issuanceSvc := issuance.NewService(&issuance.Config{
			SessionStore:    sessions,
			SessionIdentity: sessionid.New(deriver.MustDerive(kdf.PurposeIssuanceSession)),
			SignatureGate:   gate,
			Issuers:         issuers,
			Composer:        credential.NewComposer(proofs, jwsSigner),
			EventService:    eventSvc,
			EventTopic:      params.issuerEventTopic,
			Metrics:         metricsImpl,
			ExternalURL:     params.hostURLExternal,
		})

		issuerv1.RegisterHandlers(e, issuerv1.NewController(&issuerv1.Config{
			IssuanceService: issuancetracing.Wrap(issuanceSvc, tracer),
			Issuers:         issuers,
			KeySet:          jwsSigner,
		}))
	}

	if params.mode.verifier() {
		jalRegistry, jalErr := createJALRegistry(params, be.mongodb)
		if jalErr != nil {
			return fail(jalErr)
		}

		results, resultsErr := createResultStore(params, be.mongodb)
		if resultsErr != nil {
			return fail(resultsErr)
		}

		sessions := newSessionStore[*verification.ClientSession](params, be.redis, verificationSessionPrefix,
			protector)
		challenges := newSessionStore[string](params, be.redis, verificationChallengePfx, protector)
		closers = append(closers, sessions.Dispose, challenges.Dispose)

		verificationSvc := verification.NewService(&verification.Config{
			SessionStore:    sessions,
			ChallengeStore:  challenges,
			SessionIdentity: sessionid.New(deriver.MustDerive(kdf.PurposeVerificationSession)),
			AccessTokens:    sessionid.New(deriver.MustDerive(kdf.PurposeAccessToken)),
			JALRegistry:     jalRegistry,
			ZKVerifier:      zkverifier.New(computeClient, params.zkVerifierURL),
			SignatureGate:   gate,
			ResultStore:     results,
			Signer:          jwsSigner,
			PoW:             pow.New(params.powDifficulty),
			EventService:    eventSvc,
			EventTopic:      params.verifierEventTopic,
			Metrics:         metricsImpl,
			ExternalURL:     params.hostURLExternal,
		})

		verifierv1.RegisterHandlers(e, verifierv1.NewController(&verifierv1.Config{
			VerificationService: verificationtracing.Wrap(verificationSvc, tracer),
			KeySet:              jwsSigner,
		}))

		jalv1.RegisterHandlersWithAPIKey(e, jalv1.NewController(jalRegistry), params.token)
	}

	e.GET(healthCheckEndpoint, healthcheck.NewController(
		healthchecks.NewHandler(healthchecks.Get(be.healthConfig())),
	).GetHealthcheck)

	logapi.NewController(e)

	version.NewController(e, version.Config{
		Version:       conf.version,
		ServerVersion: conf.serverVersion,
		Mode:          string(params.mode),
	})

	ready.Ready(true)

	return e, cleanup, nil
}

func createTLSConfig(params *tlsParameters) (*tls.Config, error) {
	rootCAs, err := tlsutils.GetCertPool(params.systemCertPool, params.caCerts)
	if err != nil {
		return nil, err
	}

	return &tls.Config{RootCAs: rootCAs, MinVersion: tls.VersionTLS12}, nil
}

func createMetrics(providerName string, e *echo.Echo) (metrics.Metrics, error) {
	switch providerName {
	case "":
		return noop.GetMetrics(), nil
	case "prometheus":
		provider := metricsProvider.NewPrometheusProvider()
		if err := provider.Create(); err != nil {
			return nil, fmt.Errorf("create prometheus provider: %w", err)
		}

		e.GET(metricsProvider.Path, echo.WrapHandler(metricsProvider.Handler()))

		return provider.Metrics(), nil
	default:
		return nil, fmt.Errorf("metrics provider %s is not supported", providerName)
	}
}

func createBackends(params *startupParameters, tlsConfig *tls.Config) (*backends, error) {
	be := &backends{}

	needRedis := params.sessionStoreType == storeTypeRedis || params.eventPublisher == eventPublisherRedis
	needMongo := (params.mode.verifier() && params.resultStoreType == storeTypeMongoDB) ||
		(params.mode.verifier() && params.jalStoreType == storeTypeMongoDB)

	if needRedis {
		opts := []redis.ClientOpt{
			redis.WithTraceProvider(otel.GetTracerProvider()),
			redis.WithMasterName(params.redisParameters.masterName),
			redis.WithPassword(params.redisParameters.password),
		}

		if !params.redisParameters.disableTLS {
			opts = append(opts, redis.WithTLSConfig(tlsConfig))
		}

		client, err := common.InitRedis(params.redisParameters.addrs, params.dbParameters.Timeout, logger, opts...)
		if err != nil {
			return nil, err
		}

		be.redis = client
	}

	if needMongo {
		client, err := common.InitMongoDB(params.dbParameters, logger,
			mongodb.WithTraceProvider(otel.GetTracerProvider()))
		if err != nil {
			be.close()

			return nil, err
		}

		be.mongodb = client
	}

	return be, nil
}

// createEventService returns the publisher handed to the services. Every event reaches the in-process
// bus, whose subscribers write the audit log.
func createEventService(params *startupParameters, redisClient *redis.Client) (eventPublisher, func(), error) {
	bus := event.NewEventBus()

	audit := log.New("audit", log.WithEncoding(common.LogEncoding(params.logFormat)))

	var subscribers []*event.Subscriber

	stop := func() {
		for _, s := range subscribers {
			s.Stop()
		}

		if err := bus.Close(); err != nil {
			logger.Warn("Failed to close event bus", log.WithError(err))
		}
	}

	for _, topic := range []string{params.issuerEventTopic, params.verifierEventTopic} {
		sub, err := event.NewEventSubscriber(bus, topic, event.LogHandler(audit))
		if err != nil {
			stop()

			return nil, nil, err
		}

		sub.Start()

		subscribers = append(subscribers, sub)
	}

	if params.eventPublisher == eventPublisherRedis {
		return event.Fanout{bus, event.NewRedisPublisher(redisClient, eventChannelPrefix)}, stop, nil
	}

	return bus, stop, nil
}

func createSessionProtector(params *startupParameters, deriver *kdf.Deriver) (dataprotect.Protector, error) {
	if !params.sessionEncryption {
		if params.sessionCompression != dataprotect.CompressionNone {
			logger.Warn("Session compression is ignored when session encryption is disabled")
		}

		return dataprotect.NewNilDataProtector(), nil
	}

	cipher, err := dataprotect.NewAES(deriver.MustDerive(kdf.PurposeSessionEncryption))
	if err != nil {
		return nil, err
	}

	compressor, err := dataprotect.NewCompressor(params.sessionCompression)
	if err != nil {
		return nil, err
	}

	return dataprotect.NewDataProtector(cipher, compressor), nil
}

func newSessionStore[V any](
	params *startupParameters,
	redisClient *redis.Client,
	keyPrefix string,
	protector dataprotect.Protector,
) storage.ExpiringStore[V] {
	if params.sessionStoreType == storeTypeRedis {
		return redissessionstore.New[V](redisClient, keyPrefix, params.sessionTTL,
			redissessionstore.WithProtector[V](protector))
	}

	return memsessionstore.New[V](params.sessionTTL)
}

func createResultStore(params *startupParameters, mongoClient *mongodb.Client) (verificationResultStore, error) {
	switch params.resultStoreType {
	case storeTypeMongoDB:
		return mongoresultstore.NewStore(context.Background(), mongoClient)
	case storeTypeS3:
		var loadOpts []func(*awsconfig.LoadOptions) error

		if params.s3Parameters.region != "" {
			loadOpts = append(loadOpts, awsconfig.WithRegion(params.s3Parameters.region))
		}

		awsConfig, err := awsconfig.LoadDefaultConfig(context.Background(), loadOpts...)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}

		client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			if params.s3Parameters.hostName != "" {
				o.EndpointResolver = s3.EndpointResolverFromURL(params.s3Parameters.hostName)
				o.UsePathStyle = true
			}
		})

		return s3resultstore.NewStore(client, params.s3Parameters.bucket), nil
	default:
		return memresultstore.New(), nil
	}
}

func createJALRegistry(params *startupParameters, mongoClient *mongodb.Client) (*jal.Registry, error) {
	if params.jalStoreType == storeTypeMongoDB {
		return jal.NewRegistry(mongojalstore.NewStore(mongoClient))
	}

	return jal.NewRegistry(memjalstore.New())
}

func createSignatureGate(params *startupParameters, jsonClient *jsonhttp.Client) *signature.Gate {
	verifiers := map[signature.IDType]signature.Verifier{
		signature.IDTypeEthereum: ethereum.New(),
		signature.IDTypeSolana:   solana.New(),
	}

	if params.minaSignerURL != "" {
		verifiers[signature.IDTypeMina] = mina.New(jsonClient, params.minaSignerURL)
	}

	return signature.NewGate(verifiers)
}

func createProver(
	params *startupParameters,
	jwsSigner *signer.Signer,
	jsonClient *jsonhttp.Client,
) (*prover.Router, error) {
	jwsProver, err := prover.NewJWSProver(jwsSigner)
	if err != nil {
		return nil, err
	}

	provers := map[string]prover.Prover{
		prover.TypeJWS: jwsProver,
	}

	if params.proverURL != "" {
		remote := prover.NewRemoteProver(jsonClient, params.proverURL)

		provers[prover.TypeMinaPoseidonPasta] = remote
		provers[prover.TypeEthEIP712] = remote
	}

	return prover.NewRouter(provers), nil
}

func createIssuers(profiles []*profileapi.Issuer, jsonClient *jsonhttp.Client) (issuance.Issuers, error) {
	issuers := issuance.Issuers{}

	for _, p := range profiles {
		if !p.Active {
			logger.Info("Skipping inactive issuer profile", log.WithIssuerID(p.ID))

			continue
		}

		if p.KYC == nil {
			return nil, fmt.Errorf("issuer %s: kyc provider not configured", p.ID)
		}

		provider, err := kyc.NewClient(p.KYC, jsonClient)
		if err != nil {
			return nil, fmt.Errorf("issuer %s: %w", p.ID, err)
		}

		mapper, err := credential.NewMapper(p.Mapper)
		if err != nil {
			return nil, fmt.Errorf("issuer %s: %w", p.ID, err)
		}

		issuers[p.ID] = &issuance.Issuer{
			ID:            p.ID,
			Name:          p.Name,
			URI:           p.URI,
			DefinitionRef: p.DefinitionRef,
			SubjectTypes:  p.SubjectTypes,
			KYC:           provider,
			Mapper:        mapper,
			ProofTypes:    p.ProofTypes,
			ACI:           p.ACI,
		}

		logger.Info("Issuer profile loaded", log.WithIssuerID(p.ID), log.WithProvider(p.KYC.Name))
	}

	return issuers, nil
}

// checkProofTypes fails startup when an issuer asks for a proof no prover can produce.
func checkProofTypes(issuers issuance.Issuers, supported []string) error {
	for id, iss := range issuers {
		for _, pt := range iss.ProofTypes {
			if !lo.Contains(supported, pt) {
				return fmt.Errorf("issuer %s: proof type %s is not supported", id, pt)
			}
		}
	}

	return nil
}
