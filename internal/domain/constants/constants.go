// Package constants holds values shared across layers.
package constants

const (
	// EnvDevelop is the environment name used for local development.
	EnvDevelop = "develop"

	// PubSubProviderLocal publishes events by HTTP POST to a local worker.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// HeaderClientID identifies a client instance so newer searches can supersede older ones.
	HeaderClientID = "X-Client-Id"
	// HeaderIdempotencyKey is forwarded to the payment provider when present.
	HeaderIdempotencyKey = "Idempotency-Key"
)
