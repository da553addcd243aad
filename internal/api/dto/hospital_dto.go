package dto

// HospitalResponse is one directory listing.
type HospitalResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Address            string `json:"address"`
	Status             string `json:"status"`
	AmbulanceAvailable bool   `json:"ambulance_available"`
	ContactNumber      string `json:"contact_number"`
}
