package serviceImp

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	repo "washline/pkg/staff/repository"
	"washline/pkg/staff/service"
)

type verifier struct{ r repo.StaffRepository }

func New(r repo.StaffRepository) service.Verifier { return &verifier{r} }

// Verify never reveals whether the code or the PIN was wrong.
func (v *verifier) Verify(code, pin string) (service.Verification, error) {
	st, err := v.r.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.Verification{}, nil
		}
		return service.Verification{}, err
	}
	if !st.Active {
		return service.Verification{}, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(st.PINHash), []byte(pin)) != nil {
		return service.Verification{}, nil
	}
	return service.Verification{Success: true, StaffID: st.StaffID, StaffName: st.Name}, nil
}
