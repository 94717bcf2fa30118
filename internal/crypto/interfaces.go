package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns account secrets into one-way hashes and checks
// candidates against them. Hash output is salted, so two hashes of the same
// secret differ; only Verify can tell whether they match.
type PasswordHasher interface {
	// Hash returns the encoded hash of secret.
	Hash(secret string) (string, error)

	// Verify reports whether secret matches hash. A malformed hash never
	// matches.
	Verify(secret, hash string) bool
}
