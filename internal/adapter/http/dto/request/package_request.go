package request

// PackageRequest is the payload for service package creation and update. Price
// is a pointer so an update can tell "not sent" apart from 0.
type PackageRequest struct {
	Number      string   `json:"package_number"`
	Name        string   `json:"package_name"`
	Description string   `json:"package_description"`
	Price       *float64 `json:"package_price"`
}
