package requests

import (
	"context"
	"time"

	"krushi-backend/internal/domain"
)

// BookingView is the read-side projection of a booking joined with the
// equipment listing and the counterpart user. Not a stored entity.
type BookingView struct {
	ID            uint      `json:"id"`
	EquipmentID   uint      `json:"equipment_id"`
	EquipmentName string    `json:"equipment_name"`
	Category      string    `json:"category"`
	Unit          string    `json:"unit"`
	FarmerID      uint      `json:"farmer_id"`
	FarmerName    string    `json:"farmer_name"`
	FarmerEmail   string    `json:"farmer_email"`
	SellerID      uint      `json:"seller_id"`
	Slot          string    `json:"slot"`
	Price         float64   `json:"price"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// ApplicationView is the read-side projection of an application joined
// with the job and the labourer.
type ApplicationView struct {
	ID            uint      `json:"id"`
	JobID         uint      `json:"job_id"`
	JobTitle      string    `json:"job_title"`
	SkillRequired string    `json:"skill_required"`
	Wage          float64   `json:"wage"`
	Location      string    `json:"location"`
	LabourerID    uint      `json:"labourer_id"`
	LabourerName  string    `json:"labourer_name"`
	LabourerEmail string    `json:"labourer_email"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

const bookingSelect = `equipment_bookings.id, equipment_bookings.equipment_id,
	equipment.name AS equipment_name, equipment.category, equipment.unit,
	equipment_bookings.farmer_id, users.name AS farmer_name, users.email AS farmer_email,
	equipment_bookings.seller_id, equipment_bookings.slot, equipment_bookings.price,
	equipment_bookings.status, equipment_bookings.created_at`

// ListBookingsForSeller returns the owner-visible request queue, joined
// with equipment and requester fields, newest first.
func (s *Service) ListBookingsForSeller(ctx context.Context, sellerID uint) ([]BookingView, error) {
	var views []BookingView
	err := s.DB.WithContext(ctx).Model(&domain.EquipmentBooking{}).
		Select(bookingSelect).
		Joins("LEFT JOIN equipment ON equipment.id = equipment_bookings.equipment_id").
		Joins("LEFT JOIN users ON users.id = equipment_bookings.farmer_id").
		Where("equipment_bookings.seller_id = ?", sellerID).
		Order("equipment_bookings.created_at DESC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// ListBookingsForFarmer is the symmetric requester view.
func (s *Service) ListBookingsForFarmer(ctx context.Context, farmerID uint) ([]BookingView, error) {
	var views []BookingView
	err := s.DB.WithContext(ctx).Model(&domain.EquipmentBooking{}).
		Select(bookingSelect).
		Joins("LEFT JOIN equipment ON equipment.id = equipment_bookings.equipment_id").
		Joins("LEFT JOIN users ON users.id = equipment_bookings.farmer_id").
		Where("equipment_bookings.farmer_id = ?", farmerID).
		Order("equipment_bookings.created_at DESC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

const applicationSelect = `job_applications.id, job_applications.job_id,
	labour_jobs.title AS job_title, labour_jobs.skill_required, labour_jobs.wage, labour_jobs.location,
	job_applications.labourer_id, users.name AS labourer_name, users.email AS labourer_email,
	job_applications.message, job_applications.status, job_applications.created_at`

// ListApplicationsForJob returns the applications queued against one job.
// Only the owning farmer may read it.
func (s *Service) ListApplicationsForJob(ctx context.Context, jobID, farmerID uint) ([]ApplicationView, error) {
	var job domain.LabourJob
	if err := s.DB.WithContext(ctx).Where("id = ?", jobID).First(&job).Error; err != nil {
		return nil, ErrJobNotFound
	}
	if job.FarmerID != farmerID {
		return nil, ErrForbidden
	}
	var views []ApplicationView
	err := s.DB.WithContext(ctx).Model(&domain.JobApplication{}).
		Select(applicationSelect).
		Joins("LEFT JOIN labour_jobs ON labour_jobs.id = job_applications.job_id").
		Joins("LEFT JOIN users ON users.id = job_applications.labourer_id").
		Where("job_applications.job_id = ?", jobID).
		Order("job_applications.created_at DESC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// ListApplicationsForLabourer is the requester view, joined with job
// title, wage, skill and location.
func (s *Service) ListApplicationsForLabourer(ctx context.Context, labourerID uint) ([]ApplicationView, error) {
	var views []ApplicationView
	err := s.DB.WithContext(ctx).Model(&domain.JobApplication{}).
		Select(applicationSelect).
		Joins("LEFT JOIN labour_jobs ON labour_jobs.id = job_applications.job_id").
		Joins("LEFT JOIN users ON users.id = job_applications.labourer_id").
		Where("job_applications.labourer_id = ?", labourerID).
		Order("job_applications.created_at DESC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}
