package record

import "errors"

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrNotOwner         = errors.New("record does not belong to user")
	ErrInvalidInput     = errors.New("power rating and usage hours must be positive numbers")
	ErrInvalidWasteType = errors.New("invalid waste type")
	ErrInvalidAmount    = errors.New("amount must be a positive number")
)
