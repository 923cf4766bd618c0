package hash

import "golang.org/x/crypto/bcrypt"

// maxPasswordBytes is the most bcrypt reads. Longer passwords are cut to it
// on both hashing and checking.
const maxPasswordBytes = 72

type Hasher interface {
	HashPassword(password string) (string, error)
	CheckPassword(hash, password string) bool
}

type Bcrypt struct {
	Cost int
}

func (b Bcrypt) cost() int {
	if b.Cost < bcrypt.MinCost || b.Cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return b.Cost
}

func truncate(password string) []byte {
	p := []byte(password)
	if len(p) > maxPasswordBytes {
		p = p[:maxPasswordBytes]
	}
	return p
}

func (b Bcrypt) HashPassword(password string) (string, error) {
	hashbytes, err := bcrypt.GenerateFromPassword(truncate(password), b.cost())
	if err != nil {
		return "", err
	}

	return string(hashbytes), nil
}

func (b Bcrypt) CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(password)) == nil
}
