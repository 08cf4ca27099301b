package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid vérifie que le domaine de l'adresse résout (MX puis
// A/AAAA). Appelé uniquement à l'activation du compte, jamais sur le
// chemin chaud.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if strings.ContainsAny(domain, " \t") {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
