/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination result_store_mocks_test.go -package resultstore_test -source=result_store.go -mock_names s3Uploader=MockS3Uploader

package resultstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/zcred/vcs/pkg/service/verification"
	"github.com/zcred/vcs/pkg/storage"
)

const (
	contentType = "application/json"
	keyPrefix   = "results/"
)

type s3Uploader interface {
	PutObject(
		ctx context.Context,
		input *s3.PutObjectInput,
		opts ...func(*s3.Options),
	) (*s3.PutObjectOutput, error)

	GetObject(
		ctx context.Context,
		input *s3.GetObjectInput,
		opts ...func(*s3.Options),
	) (*s3.GetObjectOutput, error)
}

// Store archives verification results as JSON objects, one per result id.
type Store struct {
	s3Client s3Uploader
	bucket   string
}

// NewStore creates Store.
func NewStore(s3Uploader s3Uploader, bucket string) *Store {
	return &Store{
		s3Client: s3Uploader,
		bucket:   bucket,
	}
}

// Put writes the result under results/<id>.json.
func (p *Store) Put(ctx context.Context, result *verification.Result) error {
	if result.ID == "" {
		return errors.New("result id is required")
	}

	b, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	_, err = p.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Body:        bytes.NewReader(b),
		Key:         aws.String(resolveKey(result.ID)),
		Bucket:      aws.String(p.bucket),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put result: %w", err)
	}

	return nil
}

// Get returns storage.ErrDataNotFound for unknown ids.
func (p *Store) Get(ctx context.Context, id string) (*verification.Result, error) {
	res, err := p.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(resolveKey(id)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, storage.ErrDataNotFound
		}

		return nil, fmt.Errorf("get result: %w", err)
	}

	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read result: %w", err)
	}

	var result verification.Result

	if err = json.Unmarshal(b, &result); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}

	return &result, nil
}

func resolveKey(id string) string {
	return keyPrefix + id + ".json"
}
