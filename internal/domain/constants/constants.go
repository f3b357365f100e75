// Package constants holds names shared between configuration and the components that read it.
package constants

// Deployment environments.
const (
	EnvLocal      = "local"
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
