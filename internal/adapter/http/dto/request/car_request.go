package request

// CarRequest is the payload for car creation and update. On update, empty
// fields keep the stored value.
type CarRequest struct {
	OwnerName   string `json:"owner_name"`
	Phone       string `json:"phone"`
	PlateNumber string `json:"plate_number"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Year        string `json:"year"`
	Color       string `json:"color"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}
