package contract

// IHasher abstracts password hashing for the admin credential.
type IHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
