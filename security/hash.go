// Package security contains everything related to the security of user credentials
package security

import "golang.org/x/crypto/bcrypt"

type BcryptHash struct {
	Cost int
}

func New() *BcryptHash {
	return &BcryptHash{
		Cost: bcrypt.DefaultCost,
	}
}

func (b *BcryptHash) GenerateFromPassword(p string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(p), b.Cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPasswd compares a plaintext password p with the stored bcrypt hash h
func (b *BcryptHash) VerifyPasswd(p, h string) bool {
	return bcrypt.CompareHashAndPassword([]byte(h), []byte(p)) == nil
}
