package domain

import "errors"

var (
	ErrNotAuthenticated      = errors.New("not authenticated")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidToken          = errors.New("invalid token")
	ErrUserNotFound          = errors.New("user not found")
	ErrMatchNotFound         = errors.New("match not found")
	ErrTripNotFound          = errors.New("trip not found")
	ErrCannotSwipeSelf       = errors.New("cannot swipe yourself")
	ErrNotMatchParticipant   = errors.New("user is not part of this match")
	ErrNotTripParticipant    = errors.New("user is not part of this trip")
	ErrInsufficientPoints    = errors.New("insufficient points balance")
	ErrInvalidTripTransition = errors.New("invalid trip status transition")
)
