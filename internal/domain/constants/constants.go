// Package constants defines shared domain-level constants.
package constants

const (
	// EnvDevelop is the environment name used for local development.
	EnvDevelop = "develop"
	// EnvProduction is the environment name used for production deployments.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal publishes events to a local HTTP endpoint for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// RoleTraveler marks an account with a traveler profile.
	RoleTraveler = "traveler"
	// RoleBusiness marks an account with a business profile.
	RoleBusiness = "business"
)
