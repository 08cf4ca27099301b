package httperr

import "errors"

// BusinessError est une erreur métier identifiée par un code snake_case.
// Les couches usecase la renvoient telle quelle ; le handler la traduit
// en statut HTTP et en message utilisateur.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness teste si err porte le code métier donné.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
