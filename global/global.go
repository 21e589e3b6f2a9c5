package global

import (
	"context"
	"log"
	"os"

	"NAKAMA_server/identity"
	"NAKAMA_server/kv"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/gocql/gocql"
	minio "github.com/minio/minio-go/v7"
)

// InternalLogger for errors that should never happen in normal circumstances
var InternalLogger = log.New(os.Stderr, "", log.LstdFlags)

// MonitorLogger for expected-but-noteworthy request failures
var MonitorLogger = log.New(os.Stderr, "", log.LstdFlags)

// RedisClient for the redis kv backend
var RedisClient *redis.Client

// Session for the scylla kv backend
var Session *gocql.Session

// MinIOClient for travel document content
var MinIOClient *minio.Client

// Store is the record namespace; all persisted state goes through it
var Store kv.Store

// Locks serializes read-modify-write sequences on list keys
var Locks = new(kv.Locks)

// Identity resolves bearer tokens and creates provider accounts
var Identity identity.Provider

// Context is the default context
var Context = context.Background()

// Validator validates incoming bodies of data
var Validator = validator.New()

// GroupMessageLimit is the number of retained messages per group; older
// entries are dropped oldest-first on append
const GroupMessageLimit = 100
