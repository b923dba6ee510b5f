// Package config provides configuration management for the fraud prediction API.
//
// Configuration is loaded from environment variables using the env package.
// All configuration values except the model URL have sensible defaults for
// development use; an unset FRAUD_MODEL_URL disables prediction.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("HTTP server will listen on %s\n", cfg.GetHTTPAddr())
package config
