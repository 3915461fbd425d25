/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination service_mocks_test.go -package aws -source=service.go

package aws

import (
	"context"
	"crypto"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/x509"
	"encoding/asn1"
	"errors"
	"fmt"
	"hash"
	"math/big"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/kms/types"
)

type awsClient interface {
	Sign(ctx context.Context, params *kms.SignInput, optFns ...func(*kms.Options)) (*kms.SignOutput, error)
	GetPublicKey(ctx context.Context, params *kms.GetPublicKeyInput,
		optFns ...func(*kms.Options)) (*kms.GetPublicKeyOutput, error)
	DescribeKey(ctx context.Context, params *kms.DescribeKeyInput,
		optFns ...func(*kms.Options)) (*kms.DescribeKeyOutput, error)
}

type metricsProvider interface {
	SignTime(value time.Duration)
}

type ecdsaSignature struct {
	R, S *big.Int
}

type signingSpec struct {
	jwsAlg   string
	newHash  func() hash.Hash
	keyBytes int
}

// nolint: gochecknoglobals
var signingSpecs = map[types.SigningAlgorithmSpec]signingSpec{
	types.SigningAlgorithmSpecEcdsaSha256: {jwsAlg: "ES256", newHash: sha256.New, keyBytes: 32},
	types.SigningAlgorithmSpecEcdsaSha384: {jwsAlg: "ES384", newHash: sha512.New384, keyBytes: 48},
	types.SigningAlgorithmSpecEcdsaSha512: {jwsAlg: "ES512", newHash: sha512.New, keyBytes: 66},
}

// Service signs with an asymmetric ECC key held in AWS KMS. Signatures are returned in the
// fixed size r || s form used by JWS.
type Service struct {
	client  awsClient
	metrics metricsProvider
	keyID   string

	mu      sync.Mutex
	algo    types.SigningAlgorithmSpec
	spec    *signingSpec
	pubKey  crypto.PublicKey
	loadErr error
}

// New return aws service. keyURI is a key id, an alias or an aws-kms:// arn URI.
func New(awsConfig *aws.Config, keyURI string, optFns ...Opts) (*Service, error) {
	options := &opts{}

	for _, opt := range optFns {
		opt(options)
	}

	keyID, err := getKeyID(keyURI)
	if err != nil {
		return nil, err
	}

	client := options.awsClient
	if client == nil {
		var kmsOpts []func(*kms.Options)

		if options.endpoint != "" {
			kmsOpts = append(kmsOpts, func(o *kms.Options) {
				o.EndpointResolver = kms.EndpointResolverFromURL(options.endpoint)
			})
		}

		client = kms.NewFromConfig(*awsConfig, kmsOpts...)
	}

	return &Service{
		client:  client,
		metrics: options.metrics,
		keyID:   keyID,
	}, nil
}

// Algorithm returns the JWS alg of the key.
func (s *Service) Algorithm(ctx context.Context) (string, error) {
	if err := s.load(ctx); err != nil {
		return "", err
	}

	return s.spec.jwsAlg, nil
}

// PublicKey returns the parsed public key.
func (s *Service) PublicKey(ctx context.Context) (crypto.PublicKey, error) {
	if err := s.load(ctx); err != nil {
		return nil, err
	}

	return s.pubKey, nil
}

// Sign hashes msg and signs the digest.
func (s *Service) Sign(ctx context.Context, msg []byte) ([]byte, error) {
	startTime := time.Now()

	defer func() {
		if s.metrics != nil {
			s.metrics.SignTime(time.Since(startTime))
		}
	}()

	if err := s.load(ctx); err != nil {
		return nil, err
	}

	digest := s.spec.newHash()
	digest.Write(msg) //nolint:errcheck

	result, err := s.client.Sign(ctx, &kms.SignInput{
		KeyId:            aws.String(s.keyID),
		Message:          digest.Sum(nil),
		MessageType:      types.MessageTypeDigest,
		SigningAlgorithm: s.algo,
	})
	if err != nil {
		return nil, fmt.Errorf("kms sign: %w", err)
	}

	sig := ecdsaSignature{}

	if _, err = asn1.Unmarshal(result.Signature, &sig); err != nil {
		return nil, fmt.Errorf("parse der signature: %w", err)
	}

	return append(copyPadded(sig.R.Bytes(), s.spec.keyBytes), copyPadded(sig.S.Bytes(), s.spec.keyBytes)...), nil
}

// HealthCheck checks that the key is reachable.
func (s *Service) HealthCheck(ctx context.Context) error {
	_, err := s.client.DescribeKey(ctx, &kms.DescribeKeyInput{KeyId: aws.String(s.keyID)})

	return err
}

// load fetches key metadata and the public key once. Failures are not cached.
func (s *Service) load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spec != nil {
		return nil
	}

	pub, err := s.client.GetPublicKey(ctx, &kms.GetPublicKeyInput{KeyId: aws.String(s.keyID)})
	if err != nil {
		return fmt.Errorf("kms get public key: %w", err)
	}

	if pub.KeyUsage != types.KeyUsageTypeSignVerify || len(pub.SigningAlgorithms) == 0 {
		return errors.New("kms key is not a signing key")
	}

	algo := pub.SigningAlgorithms[0]

	spec, ok := signingSpecs[algo]
	if !ok {
		return fmt.Errorf("unsupported signing algorithm %s", algo)
	}

	pubKey, err := x509.ParsePKIXPublicKey(pub.PublicKey)
	if err != nil {
		return fmt.Errorf("parse public key: %w", err)
	}

	s.algo, s.spec, s.pubKey = algo, &spec, pubKey

	return nil
}

func copyPadded(source []byte, size int) []byte {
	dest := make([]byte, size)
	copy(dest[size-len(source):], source)

	return dest
}

func getKeyID(keyURI string) (string, error) {
	if keyURI == "" {
		return "", errors.New("empty kms key id")
	}

	if !strings.HasPrefix(keyURI, "aws-kms://") {
		return keyURI, nil
	}

	// keyURI must have the following format: 'aws-kms://arn:<partition>:kms:<region>:[:path]'.
	// See http://docs.aws.amazon.com/general/latest/gr/aws-arns-and-namespaces.html.
	re1 := regexp.MustCompile(`aws-kms://arn:(aws[a-zA-Z0-9-_]*):kms:([a-z0-9-]+):([a-z0-9-]+):key/(.+)`)

	if strings.Contains(keyURI, "alias") {
		re1 = regexp.MustCompile(`aws-kms://arn:(aws[a-zA-Z0-9-_]*):kms:([a-z0-9-]+):([a-z0-9-]+):(.+)`)
	}

	r := re1.FindStringSubmatch(keyURI)

	const subStringCount = 5

	if len(r) != subStringCount {
		return "", fmt.Errorf("extracting key id from URI failed")
	}

	return r[4], nil
}
