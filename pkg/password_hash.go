package pkg

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost can be lowered in tests, bcrypt with cost 14 takes ~1s.
var PasswordHashCost = 14

var (
	dummyHash     []byte
	dummyHashOnce sync.Once
)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(hash), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BurnPasswordCheck spends the same time as a real CheckPasswordHash, for
// logins with an unknown email to be indistinguishable by response time.
func BurnPasswordCheck(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), PasswordHashCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
