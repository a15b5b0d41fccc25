package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Distincter returns the distinct string values of a field.
type Distincter interface {
	Distinct(ctx context.Context, field string) ([]string, error)
}

type collectionDistincter struct {
	coll *mongo.Collection
}

// FromCollection adapts a collection to Distincter. Non-string values fail decoding.
func FromCollection(coll *mongo.Collection) Distincter {
	return collectionDistincter{coll: coll}
}

func (c collectionDistincter) Distinct(ctx context.Context, field string) ([]string, error) {
	var values []string
	if err := c.coll.Distinct(ctx, field, bson.D{}).Decode(&values); err != nil {
		return nil, err
	}
	return values, nil
}

// Source snapshots the distinct values of a document field as registered usernames.
type Source struct {
	coll  Distincter
	name  string
	field string
}

// NewSource returns a Source reading field through coll.
// name labels the source, usually the collection name.
func NewSource(coll Distincter, name, field string) (*Source, error) {
	if field == "" {
		return nil, ErrEmptyField
	}
	return &Source{coll: coll, name: name, field: field}, nil
}

// Name identifies the source in logs and errors.
func (s *Source) Name() string {
	return fmt.Sprintf("mongo:%s.%s", s.name, s.field)
}

// Usernames returns every distinct value of the field.
func (s *Source) Usernames(ctx context.Context) ([]string, error) {
	values, err := s.coll.Distinct(ctx, s.field)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadUsernames, err)
	}
	return values, nil
}
