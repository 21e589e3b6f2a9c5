package kv

import (
	"context"

	"github.com/gocql/gocql"
)

// ScyllaStore backs the record namespace with a single kv table:
//
//	CREATE TABLE kv (key text PRIMARY KEY, value text)
//
// created at boot in server.go
type ScyllaStore struct {
	session *gocql.Session
}

// NewScyllaStore wraps an existing cql session
func NewScyllaStore(session *gocql.Session) *ScyllaStore {
	return &ScyllaStore{session: session}
}

func (s *ScyllaStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.session.Query(`
		SELECT value FROM kv WHERE key = ? LIMIT 1;`,
		key,
	).WithContext(ctx).Scan(&value)
	if err != nil {
		if err == gocql.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(value), nil
}

func (s *ScyllaStore) Set(ctx context.Context, key string, value []byte) error {
	return s.session.Query(`
		INSERT INTO kv (key, value) VALUES (?, ?);`,
		key, string(value),
	).WithContext(ctx).Exec()
}

// MSet writes all pairs in one logged batch
func (s *ScyllaStore) MSet(ctx context.Context, pairs ...Pair) error {
	batch := s.session.NewBatch(gocql.LoggedBatch).WithContext(ctx)
	for _, p := range pairs {
		batch.Query(`INSERT INTO kv (key, value) VALUES (?, ?);`, p.Key, string(p.Value))
	}
	return s.session.ExecuteBatch(batch)
}

func (s *ScyllaStore) Del(ctx context.Context, key string) error {
	return s.session.Query(`
		DELETE FROM kv WHERE key = ?;`,
		key,
	).WithContext(ctx).Exec()
}
