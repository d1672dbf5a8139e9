package domain

import "errors"

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrInvalidId           = errors.New("invalid id")
	ErrShowBackingRequired = errors.New("a show must reference exactly one of movie or event")
	ErrSeatAlreadyReserved = errors.New("seat(s) are already reserved")
)
