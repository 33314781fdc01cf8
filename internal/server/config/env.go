package config

import (
	"os"
	"strconv"
)

// parseEnv overlays Config values from environment variables.
//
// Recognized variables:
//
//	PORT                  HTTP port (default 8080)
//	STORE_DRIVER          "postgres" or "dynamo"
//	DATABASE_DSN          PostgreSQL DSN
//	DYNAMO_TABLE          DynamoDB table name
//	API_SECRET_NAME       vault secret holding the api auth key
//	AWS_REGION            vault/dynamo region
//	AWS_ACCESS_KEY_ID     static credentials (optional)
//	AWS_SECRET_ACCESS_KEY static credentials (optional)
//	AWS_ENDPOINT_URL      endpoint override for local emulators (optional)
func parseEnv(config *Config) {

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.Port = port
		}
	}

	if v := os.Getenv("STORE_DRIVER"); v != "" {
		config.StoreDriver = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("DYNAMO_TABLE"); v != "" {
		config.DynamoTable = v
	}
	if v := os.Getenv("API_SECRET_NAME"); v != "" {
		config.SecretName = v
	}
	if v := os.Getenv("AWS_REGION"); v != "" {
		config.AWSRegion = v
	}
	if v := os.Getenv("AWS_ACCESS_KEY_ID"); v != "" {
		config.AWSAccessKeyID = v
	}
	if v := os.Getenv("AWS_SECRET_ACCESS_KEY"); v != "" {
		config.AWSSecretAccessKey = v
	}
	if v := os.Getenv("AWS_ENDPOINT_URL"); v != "" {
		config.AWSBaseEndpoint = v
	}
}
