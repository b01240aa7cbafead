package requests

import "errors"

var (
	ErrBookingNotFound      = errors.New("Booking not found")
	ErrApplicationNotFound  = errors.New("Application not found")
	ErrEquipmentNotFound    = errors.New("Equipment not found")
	ErrJobNotFound          = errors.New("Job not found")
	ErrEquipmentPaused      = errors.New("Equipment is paused and cannot be booked")
	ErrJobNotOpen           = errors.New("Job is not open for applications")
	ErrDuplicateApplication = errors.New("A pending application for this job already exists")
	ErrForbidden            = errors.New("Only the resource owner can decide on this request")
	ErrAlreadyDecided       = errors.New("Request has already been decided")
	ErrInvalidOutcome       = errors.New("Outcome must be ACCEPTED or REJECTED")
	ErrSlotRequired         = errors.New("Slot is required")
	ErrMessageRequired      = errors.New("Message is required")
)
