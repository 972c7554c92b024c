package service

import "golang.org/x/crypto/bcrypt"

// Verification is the outcome the rest of the system sees: identity
// checks gate payments and stage advances, nothing more.
type Verification struct {
	Success   bool   `json:"success"`
	StaffID   uint   `json:"staff_id,omitempty"`
	StaffName string `json:"staff_name,omitempty"`
}

type Verifier interface {
	Verify(code, pin string) (Verification, error)
}

func HashPIN(pin string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
