// server/config/config.go
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// --- Sub-structs mirroring config.yaml ---

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // gin mode: debug, release, test
}

type MongoConfig struct {
	URI     string        `mapstructure:"uri"`
	DBName  string        `mapstructure:"dbName"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// StoreConfig selects the repository backend. "mongo" in every real deployment,
// "memory" for running the API without a database.
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allowOrigins"`
}

type S3Config struct {
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"accessKeyID"`
	SecretAccessKey string `mapstructure:"secretAccessKey"`
	Endpoint        string `mapstructure:"endpoint"`
	Prefix          string `mapstructure:"prefix"`
}

// Enabled reports whether snapshot exports can be uploaded.
func (c S3Config) Enabled() bool {
	return c.Bucket != "" && c.Region != ""
}

type SeedDriver struct {
	Name       string `mapstructure:"name"`
	CarDetails string `mapstructure:"carDetails"`
}

type SeedConfig struct {
	Drivers []SeedDriver `mapstructure:"drivers"`
}

// --- Main Config struct ---

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
	Store  StoreConfig  `mapstructure:"store"`
	CORS   CORSConfig   `mapstructure:"cors"`
	S3     S3Config     `mapstructure:"s3"`
	Seed   SeedConfig   `mapstructure:"seed"`
}

const (
	StoreDriverMongo  = "mongo"
	StoreDriverMemory = "memory"
)

// LoadConfig reads config.yaml from path and overrides it with environment variables.
// It only reads the environment; loading a .env file is left to the caller.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.dbName", "booking_system")
	v.SetDefault("mongo.timeout", 10*time.Second)
	v.SetDefault("store.driver", StoreDriverMongo)
	v.SetDefault("cors.allowOrigins", []string{"http://localhost:3000"})

	// "mongo.uri" in YAML is overridden by MONGO_URI, and so on.
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.mode", "GIN_MODE")
	v.BindEnv("mongo.uri", "MONGO_URI", "MONGODB_URI")
	v.BindEnv("mongo.dbName", "MONGO_DBNAME", "MONGODB_DB")
	v.BindEnv("mongo.timeout", "MONGO_TIMEOUT")
	v.BindEnv("store.driver", "STORE_DRIVER")
	v.BindEnv("cors.allowOrigins", "CORS_ALLOW_ORIGINS")
	v.BindEnv("s3.bucket", "S3_BUCKET")
	v.BindEnv("s3.region", "S3_REGION")
	v.BindEnv("s3.accessKeyID", "S3_ACCESS_KEY_ID")
	v.BindEnv("s3.secretAccessKey", "S3_SECRET_ACCESS_KEY")
	v.BindEnv("s3.endpoint", "S3_ENDPOINT")
	v.BindEnv("s3.prefix", "S3_PREFIX")

	// Without a config file only defaults and environment variables are used.
	if err = v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}

	// CORS_ALLOW_ORIGINS arrives as one comma separated string.
	config.CORS.AllowOrigins = splitAndTrim(config.CORS.AllowOrigins)

	switch config.Store.Driver {
	case StoreDriverMongo, StoreDriverMemory:
	default:
		err = errors.New("store.driver must be \"mongo\" or \"memory\", got " + config.Store.Driver)
	}
	return
}

func splitAndTrim(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
