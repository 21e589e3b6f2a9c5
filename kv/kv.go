package kv

import (
	"context"
	Errors "errors"

	jsoniter "github.com/json-iterator/go"
)

// ErrNotFound is returned by Get when a key has no record
var ErrNotFound = Errors.New("kv: not found")

// Pair is a single key-value write in an MSet
type Pair struct {
	Key   string
	Value []byte
}

// Store is the flat key-value namespace backing every record in the system.
// Implementations must treat values as opaque bytes; all records are JSON.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	MSet(ctx context.Context, pairs ...Pair) error
	Del(ctx context.Context, key string) error
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetJSON gets a key and unmarshals its record into out
func GetJSON(ctx context.Context, s Store, key string, out interface{}) error {
	b, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// SetJSON marshals a record and sets it at key
func SetJSON(ctx context.Context, s Store, key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, b)
}

// PairJSON builds an MSet pair from a record
func PairJSON(key string, v interface{}) (Pair, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Key: key, Value: b}, nil
}

// GetList gets a string-list key, treating a missing key as an empty list
func GetList(ctx context.Context, s Store, key string) ([]string, error) {
	var list []string
	err := GetJSON(ctx, s, key, &list)
	if err != nil {
		if err == ErrNotFound {
			return []string{}, nil
		}
		return nil, err
	}
	return list, nil
}
