package requests

import (
	"context"

	"krushi-backend/internal/domain"

	"gorm.io/gorm"
)

// Service is the booking/application lifecycle engine. Both request kinds
// share one state machine: PENDING -> ACCEPTED | REJECTED, terminal states
// one-way. Only the resource owner (equipment seller, job farmer) may
// decide, and the owner is resolved through the resource's FK, never
// trusted from the request.
type Service struct {
	DB *gorm.DB
}

// RequestBooking creates a PENDING booking against a listing. The seller
// id is resolved from equipment.owner_id at creation time so owner queues
// can be listed without a join.
func (s *Service) RequestBooking(ctx context.Context, equipmentID, farmerID uint, slot string, price float64) (*domain.EquipmentBooking, error) {
	if slot == "" {
		return nil, ErrSlotRequired
	}
	var eq domain.Equipment
	if err := s.DB.WithContext(ctx).Where("id = ?", equipmentID).First(&eq).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}
	if eq.Status == domain.EquipmentPaused {
		return nil, ErrEquipmentPaused
	}
	if price <= 0 {
		price = eq.Price
	}
	booking := &domain.EquipmentBooking{
		EquipmentID: equipmentID,
		FarmerID:    farmerID,
		SellerID:    eq.OwnerID,
		Slot:        slot,
		Price:       price,
		Status:      domain.RequestPending,
	}
	if err := s.DB.WithContext(ctx).Create(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

// RequestApplication creates a PENDING application against an OPEN job.
// A second PENDING application for the same (job, labourer) pair is
// rejected; re-applying after a rejection is allowed.
func (s *Service) RequestApplication(ctx context.Context, jobID, labourerID uint, message string) (*domain.JobApplication, error) {
	if message == "" {
		return nil, ErrMessageRequired
	}
	var job domain.LabourJob
	if err := s.DB.WithContext(ctx).Where("id = ?", jobID).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	if job.Status != domain.JobOpen {
		return nil, ErrJobNotOpen
	}
	var count int64
	err := s.DB.WithContext(ctx).Model(&domain.JobApplication{}).
		Where("job_id = ? AND labourer_id = ? AND status = ?", jobID, labourerID, domain.RequestPending).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateApplication
	}
	app := &domain.JobApplication{
		JobID:      jobID,
		LabourerID: labourerID,
		Message:    message,
		Status:     domain.RequestPending,
	}
	if err := s.DB.WithContext(ctx).Create(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

// DecideBooking moves a PENDING booking to ACCEPTED or REJECTED. The actor
// must be the equipment owner; ownership is checked against the current
// equipment row when it still exists, falling back to the seller id
// captured at creation when the listing was deleted by the audit
// interface.
func (s *Service) DecideBooking(ctx context.Context, bookingID, actorID uint, outcome string) (*domain.EquipmentBooking, error) {
	if !domain.IsDecision(outcome) {
		return nil, ErrInvalidOutcome
	}
	var booking domain.EquipmentBooking
	if err := s.DB.WithContext(ctx).Where("id = ?", bookingID).First(&booking).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	ownerID := booking.SellerID
	var eq domain.Equipment
	if err := s.DB.WithContext(ctx).Where("id = ?", booking.EquipmentID).First(&eq).Error; err == nil {
		ownerID = eq.OwnerID
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	if actorID != ownerID {
		return nil, ErrForbidden
	}

	if err := s.settle(ctx, &domain.EquipmentBooking{}, bookingID, outcome); err != nil {
		return nil, err
	}
	booking.Status = outcome
	return &booking, nil
}

// DecideApplication moves a PENDING application to ACCEPTED or REJECTED.
// The actor must be the farmer who owns the job the application targets.
func (s *Service) DecideApplication(ctx context.Context, applicationID, actorID uint, outcome string) (*domain.JobApplication, error) {
	if !domain.IsDecision(outcome) {
		return nil, ErrInvalidOutcome
	}
	var app domain.JobApplication
	if err := s.DB.WithContext(ctx).Where("id = ?", applicationID).First(&app).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	var job domain.LabourJob
	if err := s.DB.WithContext(ctx).Where("id = ?", app.JobID).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	if actorID != job.FarmerID {
		return nil, ErrForbidden
	}

	if err := s.settle(ctx, &domain.JobApplication{}, applicationID, outcome); err != nil {
		return nil, err
	}
	app.Status = outcome
	return &app, nil
}

// settle is the terminal-transition guard: a single conditional UPDATE so
// two concurrent decides cannot both observe PENDING and both win. Zero
// rows affected means the record was already terminal.
func (s *Service) settle(ctx context.Context, model interface{}, id uint, outcome string) error {
	res := s.DB.WithContext(ctx).Model(model).
		Where("id = ? AND status = ?", id, domain.RequestPending).
		Update("status", outcome)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyDecided
	}
	return nil
}
