/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jalstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zcred/vcs/pkg/jal"
	"github.com/zcred/vcs/pkg/storage"
	"github.com/zcred/vcs/pkg/storage/mongodb"
)

const (
	collectionName = "jal_programs"
)

// The program is kept as its canonical JSON text so that the stored bytes hash to the id.
type mongoDocument struct {
	ID        string    `bson:"_id"`
	Program   string    `bson:"program"`
	Comment   string    `bson:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt"`
}

// Store manages JAL programs in MongoDB.
type Store struct {
	mongoClient *mongodb.Client
}

// NewStore creates Store.
func NewStore(mongoClient *mongodb.Client) *Store {
	return &Store{mongoClient: mongoClient}
}

// Create inserts entry unless a program with its id exists.
func (p *Store) Create(ctx context.Context, entry *jal.Entry) (bool, error) {
	_, err := p.mongoClient.Collection(collectionName).InsertOne(ctx, &mongoDocument{
		ID:        entry.ID,
		Program:   string(entry.Program),
		Comment:   entry.Comment,
		CreatedAt: entry.CreatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}

		return false, fmt.Errorf("insert jal program: %w", err)
	}

	return true, nil
}

// Get returns storage.ErrDataNotFound for unknown ids.
func (p *Store) Get(ctx context.Context, id string) (*jal.Entry, error) {
	doc := &mongoDocument{}

	err := p.mongoClient.Collection(collectionName).FindOne(ctx, bson.M{"_id": id}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find jal program: %w", err)
	}

	return &jal.Entry{
		ID:        doc.ID,
		Program:   []byte(doc.Program),
		Comment:   doc.Comment,
		CreatedAt: doc.CreatedAt.UTC(),
	}, nil
}
