package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/profilekeeper/internal/flagx"
	"github.com/dmitrijs2005/profilekeeper/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "30s" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct which uses time.Duration.
type JsonConfig struct {
	Port               int            `json:"port"`
	StoreDriver        string         `json:"store_driver"`
	DatabaseDSN        string         `json:"database_dsn"`
	DynamoTable        string         `json:"dynamo_table"`
	SecretName         string         `json:"secret_name"`
	AWSRegion          string         `json:"aws_region"`
	AWSAccessKeyID     string         `json:"aws_access_key_id"`
	AWSSecretAccessKey string         `json:"aws_secret_access_key"`
	AWSBaseEndpoint    string         `json:"aws_base_endpoint"`
	ReadTimeout        timex.Duration `json:"read_timeout"`
	WriteTimeout       timex.Duration `json:"write_timeout"`
	IdleTimeout        timex.Duration `json:"idle_timeout"`
	ShutdownTimeout    timex.Duration `json:"shutdown_timeout"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags; if neither
// is set, no JSON file is loaded. If the file cannot be read or contains
// invalid JSON, the function panics.
//
// The caller is expected to merge these values with defaults, environment
// variables and command-line flags as part of the full configuration
// process.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.Port != 0 {
		config.Port = c.Port
	}
	if c.StoreDriver != "" {
		config.StoreDriver = c.StoreDriver
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.DynamoTable != "" {
		config.DynamoTable = c.DynamoTable
	}
	if c.SecretName != "" {
		config.SecretName = c.SecretName
	}
	if c.AWSRegion != "" {
		config.AWSRegion = c.AWSRegion
	}
	if c.AWSAccessKeyID != "" {
		config.AWSAccessKeyID = c.AWSAccessKeyID
	}
	if c.AWSSecretAccessKey != "" {
		config.AWSSecretAccessKey = c.AWSSecretAccessKey
	}
	if c.AWSBaseEndpoint != "" {
		config.AWSBaseEndpoint = c.AWSBaseEndpoint
	}
	if c.ReadTimeout.Duration != 0 {
		config.ReadTimeout = c.ReadTimeout.Duration
	}
	if c.WriteTimeout.Duration != 0 {
		config.WriteTimeout = c.WriteTimeout.Duration
	}
	if c.IdleTimeout.Duration != 0 {
		config.IdleTimeout = c.IdleTimeout.Duration
	}
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}
