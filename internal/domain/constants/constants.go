package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Audit event transports
const (
	PubSubProviderStore  = "store"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNATS   = "nats"
)

// Identity providers
const (
	AuthProviderFirebase = "firebase"
	AuthProviderJWT      = "jwt"
)

// SignInProviderGoogle is the Firebase sign-in provider id for Google accounts.
const SignInProviderGoogle = "google.com"
