package domain

// HospitalStatus represents the operating state shown in the directory.
type HospitalStatus string

const (
	HospitalStatusOpen       HospitalStatus = "Open"
	HospitalStatusRoundClock HospitalStatus = "24/7"
	HospitalStatusClosed     HospitalStatus = "Closed"
)

// Hospital is a read-only directory listing.
type Hospital struct {
	ID                 string
	Name               string
	Address            string
	Status             HospitalStatus
	AmbulanceAvailable bool
	ContactNumber      string
}
