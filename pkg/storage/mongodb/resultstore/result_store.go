/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resultstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zcred/vcs/pkg/service/verification"
	"github.com/zcred/vcs/pkg/storage"
	"github.com/zcred/vcs/pkg/storage/mongodb"
)

const (
	collectionName = "verification_results"
)

// Result holds the JSON encoded record; bson would turn large JSON numbers in proofs into floats.
type mongoDocument struct {
	ID        string    `bson:"_id"`
	SessionID string    `bson:"sessionId"`
	JalID     string    `bson:"jalId"`
	ClientID  string    `bson:"clientId"`
	Subject   bson.M    `bson:"subject"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"createdAt"`
	Result    string    `bson:"result"`
}

// Store keeps verification results in MongoDB. Documents are insert only.
type Store struct {
	mongoClient *mongodb.Client
}

// NewStore creates Store and its indexes.
func NewStore(ctx context.Context, mongoClient *mongodb.Client) (*Store, error) {
	_, err := mongoClient.Collection(collectionName).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "jalId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "sessionId", Value: 1}}},
		{Keys: bson.D{{Key: "subject.id.type", Value: 1}, {Key: "subject.id.key", Value: 1}}},
	})
	if err != nil {
		return nil, fmt.Errorf("create indexes: %w", err)
	}

	return &Store{mongoClient: mongoClient}, nil
}

// Put inserts result.
func (p *Store) Put(ctx context.Context, result *verification.Result) error {
	b, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("create doc: %w", err)
	}

	subject, err := mongodb.ToDocument(result.Subject)
	if err != nil {
		return fmt.Errorf("create doc: %w", err)
	}

	_, err = p.mongoClient.Collection(collectionName).InsertOne(ctx, &mongoDocument{
		ID:        result.ID,
		SessionID: result.SessionID,
		JalID:     result.JalID,
		ClientID:  result.ClientID,
		Subject:   subject,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
		Result:    string(b),
	})
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}

	return nil
}

// Get returns storage.ErrDataNotFound for unknown ids.
func (p *Store) Get(ctx context.Context, id string) (*verification.Result, error) {
	doc := &mongoDocument{}

	err := p.mongoClient.Collection(collectionName).
		FindOne(ctx, bson.M{"_id": id}, options.FindOne()).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find result: %w", err)
	}

	result := &verification.Result{}

	if err = json.Unmarshal([]byte(doc.Result), result); err != nil {
		return nil, fmt.Errorf("result deserialization failed: %w", err)
	}

	return result, nil
}
