package config

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Config struct {
	MongoURI string
	DBName   string
	Port     string
}

// Load reads the environment. A missing .env file is fine in deployed
// environments where variables come from the platform.
func Load() Config {
	_ = godotenv.Load()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = fmt.Sprintf(
			"mongodb+srv://%s:%s@cluster0.by8ms6m.mongodb.net/?retryWrites=true&w=majority",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASS"),
		)
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "freshRackDB"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	return Config{MongoURI: uri, DBName: dbName, Port: port}
}

// ConnectDB establishes the shared client handle used by every request.
// The driver owns pooling; one handle is safe for concurrent use.
func ConnectDB(ctx context.Context, cfg Config) (*mongo.Database, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return client.Database(cfg.DBName), nil
}
