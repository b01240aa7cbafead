package equipment

import (
	"context"

	"krushi-backend/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

type CreateInput struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Unit         string  `json:"unit"`
	ImageURL     string  `json:"image_url"`
	Availability string  `json:"availability"`
}

// Create adds a listing for the owning seller with defaults
// (status Available, rating 0, bookings 0).
func (s *Service) Create(ctx context.Context, ownerID uint, in CreateInput) (*domain.Equipment, error) {
	if in.Name == "" || in.Price <= 0 {
		return nil, ErrFieldsRequired
	}
	category := in.Category
	if category == "" {
		category = domain.CategoryEquipment
	}
	eq := &domain.Equipment{
		Name:         in.Name,
		Category:     category,
		Description:  in.Description,
		Price:        in.Price,
		Unit:         in.Unit,
		OwnerID:      ownerID,
		ImageURL:     in.ImageURL,
		Availability: in.Availability,
		Status:       domain.EquipmentAvailable,
	}
	if err := s.DB.WithContext(ctx).Create(eq).Error; err != nil {
		return nil, err
	}
	return eq, nil
}

// ListByOwner returns a seller's own listings, newest first.
func (s *Service) ListByOwner(ctx context.Context, ownerID uint) ([]domain.Equipment, error) {
	var items []domain.Equipment
	if err := s.DB.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListAvailable returns listings for farmer discovery. Paused listings
// never appear here.
func (s *Service) ListAvailable(ctx context.Context) ([]domain.Equipment, error) {
	var items []domain.Equipment
	if err := s.DB.WithContext(ctx).Where("status <> ?", domain.EquipmentPaused).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

type UpdateInput struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	Unit         *string  `json:"unit"`
	ImageURL     *string  `json:"image_url"`
	Availability *string  `json:"availability"`
}

// Update edits listing fields. Only the owning seller may edit.
func (s *Service) Update(ctx context.Context, id, ownerID uint, in UpdateInput) (*domain.Equipment, error) {
	eq, err := s.ownedEquipment(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Name != nil && *in.Name != "" {
		updates["name"] = *in.Name
	}
	if in.Category != nil && *in.Category != "" {
		updates["category"] = *in.Category
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil && *in.Price > 0 {
		updates["price"] = *in.Price
	}
	if in.Unit != nil {
		updates["unit"] = *in.Unit
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if in.Availability != nil {
		updates["availability"] = *in.Availability
	}
	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(eq).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return eq, nil
}

// SetStatus toggles a listing between Available and Paused. Low Stock is
// not settable here; it belongs to a stock engine this service does not
// implement.
func (s *Service) SetStatus(ctx context.Context, id, ownerID uint, status string) (*domain.Equipment, error) {
	if status != domain.EquipmentAvailable && status != domain.EquipmentPaused {
		return nil, ErrInvalidStatus
	}
	eq, err := s.ownedEquipment(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Model(eq).Update("status", status).Error; err != nil {
		return nil, err
	}
	return eq, nil
}

func (s *Service) ownedEquipment(ctx context.Context, id, ownerID uint) (*domain.Equipment, error) {
	var eq domain.Equipment
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&eq).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if eq.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return &eq, nil
}
