package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"NAKAMA_server/config"
	"NAKAMA_server/errors"
	"NAKAMA_server/global"
	"NAKAMA_server/identity"
	"NAKAMA_server/kv"
	"NAKAMA_server/routes"

	redis "github.com/go-redis/redis/v8"
	"github.com/gocql/gocql"
	fiber "github.com/gofiber/fiber/v2"
	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func init() {
	internalErrorsFile, err := os.OpenFile("internal_errors.txt", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	errors.HandleFatalError(err)

	monitorErrorsFile, err := os.OpenFile("monitor_logs.txt", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	errors.HandleFatalError(err)

	global.InternalLogger = log.New(internalErrorsFile, "", log.LstdFlags)
	global.MonitorLogger = log.New(monitorErrorsFile, "", log.LstdFlags)

	data, err := ioutil.ReadFile("./config.json")
	errors.HandleFatalError(err)

	err = json.Unmarshal(data, &config.Config)
	errors.HandleFatalError(err)

	global.Identity = identity.New(config.Config.Auth)

	global.MinIOClient, err = minio.New(config.Config.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Config.MinIO.User, config.Config.MinIO.Password, ""),
		Secure: false,
	})
	errors.HandleFatalError(err)

	exists, err := global.MinIOClient.BucketExists(global.Context, "documents")
	errors.HandleFatalError(err)
	if !exists {
		global.MinIOClient.MakeBucket(global.Context, "documents", minio.MakeBucketOptions{Region: "us-east-1"})
	}

	switch config.Config.KV.Backend {
	case "scylla":
		cluster := gocql.NewCluster(config.Config.KV.Scylla.Hosts...)
		cluster.Keyspace = config.Config.KV.Scylla.Keyspace
		global.Session, err = cluster.CreateSession()
		errors.HandleFatalError(err)
		fmt.Println("ScyllaDB initialized")
		fmt.Printf("Keyspace: %s\n\n", cluster.Keyspace)

		err = global.Session.Query(`
			CREATE TABLE IF NOT EXISTS kv (
				key text,
				value text,
				PRIMARY KEY (key))
			WITH compaction = { 'class' :  'LeveledCompactionStrategy'  };
		`).Exec()

		errors.HandleFatalError(err)

		global.Store = kv.NewScyllaStore(global.Session)
	default:
		global.RedisClient = redis.NewClient(&redis.Options{
			Addr:     config.Config.KV.Redis.Addr,
			Password: config.Config.KV.Redis.Password,
			DB:       config.Config.KV.Redis.DB,
		})

		global.Store = kv.NewRedisStore(global.RedisClient)
	}
}

func main() {

	if global.Session != nil {
		defer global.Session.Close()
	}

	app := fiber.New()
	defer app.Shutdown()

	routes.SetRoutes(app)

	fmt.Println("Starting server on port: " + config.Config.Port)
	log.Fatal(app.Listen(config.Config.Port))

}
