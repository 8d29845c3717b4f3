// Package config loads configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment.
//   - Load parses the environment into any struct annotated with env tags and
//     caches the result per type.
//   - Parse does the same without the cache.
//
// Settings describes the knobs of the attribute runtime itself. LoadSettings
// loads it through the cache and validates it:
//
//	settings, err := config.LoadSettings(".env")
//	if err != nil {
//	    return err
//	}
//
// Recognised variables:
//
//	ATTRIBUTES_INSPECT_DEPTH      depth used when printing values in errors (3)
//	ATTRIBUTES_LOG_LEVEL          debug, info, warn or error (info)
//	ATTRIBUTES_LOG_FORMAT         json or text (json)
//	ATTRIBUTES_NULL_IS_UNDEFINED  treat null like undefined when merging (false)
//
// ResetCache clears cached configurations. LoadSettings calls it after loading
// env files so the new values are parsed.
package config
