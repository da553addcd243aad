package service

import (
	"context"

	"github.com/spec-kit/emergency-care/internal/domain"
	"github.com/spec-kit/emergency-care/internal/repository"
)

// sampleListings are inserted exactly once, when the directory is empty.
var sampleListings = []domain.Hospital{
	{
		Name:               "City Care Hospital",
		Address:            "Main Road, Sector 10",
		Status:             domain.HospitalStatusRoundClock,
		AmbulanceAvailable: true,
		ContactNumber:      "+91-9876543210",
	},
	{
		Name:               "Green Life Clinic",
		Address:            "Near Central Park",
		Status:             domain.HospitalStatusOpen,
		AmbulanceAvailable: false,
		ContactNumber:      "+91-9123456780",
	},
}

// HospitalService serves the read-only hospital directory.
type HospitalService struct {
	hospitals repository.HospitalRepository
}

// NewHospitalService builds the service.
func NewHospitalService(hospitals repository.HospitalRepository) *HospitalService {
	return &HospitalService{hospitals: hospitals}
}

// ListOptions are the two optional directory filters, combined with AND.
type ListOptions struct {
	OpenOnly      bool
	AmbulanceOnly bool
}

// List returns directory listings matching the filters, seeding the sample
// rows first if the directory has never been populated. The guard inside the
// INSERT keeps seeding idempotent across requests and processes.
func (s *HospitalService) List(ctx context.Context, opts ListOptions) ([]domain.Hospital, error) {
	if err := s.hospitals.SeedIfEmpty(ctx, sampleListings); err != nil {
		return nil, err
	}

	filter := repository.HospitalFilter{AmbulanceOnly: opts.AmbulanceOnly}
	if opts.OpenOnly {
		filter.Statuses = []domain.HospitalStatus{domain.HospitalStatusOpen, domain.HospitalStatusRoundClock}
	}
	return s.hospitals.List(ctx, filter)
}
