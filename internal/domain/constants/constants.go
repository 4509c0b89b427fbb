// Package constants holds shared identifiers used across layers.
package constants

// Deployment environment names matched against config.Env.Env.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider names matched against config.PubSub.Provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
