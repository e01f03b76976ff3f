package usecase

import "errors"

var (
	// ErrNotFound is returned when the requested car or message does not exist
	ErrNotFound = errors.New("usecase: not found")

	// ErrValidation wraps request validation failures
	ErrValidation = errors.New("usecase: validation failed")

	// ErrImageRequired is returned when an upload carries no image part
	ErrImageRequired = errors.New("usecase: car image is required")

	// ErrInvalidPrice is returned when the uploaded price is not a number
	ErrInvalidPrice = errors.New("usecase: invalid price")

	// ErrUploadDisabled is returned when object storage or the document store is not configured
	ErrUploadDisabled = errors.New("usecase: upload is not configured")

	// ErrStoreImage is returned when the image could not be written to object storage
	ErrStoreImage = errors.New("usecase: failed to store image")

	// ErrRecordCar is returned when the car document could not be inserted
	ErrRecordCar = errors.New("usecase: failed to record car")
)
