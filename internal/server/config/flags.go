package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/profilekeeper/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-p int      HTTP port (e.g., 8080)
//	-s string   store driver ("postgres" or "dynamo")
//	-d string   PostgreSQL DSN
//	-t string   DynamoDB table name
//	-n string   vault secret name for the api auth key
//	-g string   AWS region
//	-e string   AWS endpoint override (e.g., "http://127.0.0.1:4566/")
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-p", "-s", "-d", "-t", "-n", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.IntVar(&config.Port, "p", config.Port, "port to run server on")
	fs.StringVar(&config.StoreDriver, "s", config.StoreDriver, "store driver (postgres or dynamo)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DynamoTable, "t", config.DynamoTable, "dynamo table name")
	fs.StringVar(&config.SecretName, "n", config.SecretName, "vault secret name")
	fs.StringVar(&config.AWSRegion, "g", config.AWSRegion, "AWS region")
	fs.StringVar(&config.AWSBaseEndpoint, "e", config.AWSBaseEndpoint, "AWS base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
