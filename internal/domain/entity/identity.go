package entity

// Identity is the verified caller as reported by the identity provider.
type Identity struct {
	UID          string
	Email        string
	GoogleLinked bool
}
