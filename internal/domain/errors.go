package domain

import (
	"errors"
	"fmt"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrAlreadyBooked = errors.New("user already has a booking")
	ErrSlotFull      = errors.New("time slot is full")
	ErrCommitFailed  = errors.New("booking could not be saved")
)

var (
	ErrNoSession       = errors.New("no active booking session")
	ErrSessionBusy     = errors.New("booking session is busy")
	ErrUnexpectedInput = errors.New("input does not match the current booking step")
	ErrSessionActive   = fmt.Errorf("%w: booking already in progress", ErrAlreadyBooked)
)

var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
)
