package device

import "github.com/endobit/oui"

// OUIBackend resolves vendors from the compiled-in IEEE OUI database.
// No runtime initialization or file loading is needed.
type OUIBackend struct{}

func (OUIBackend) Lookup(addr string) (string, error) {
	return oui.Vendor(addr), nil
}
