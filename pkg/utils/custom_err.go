package utils

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrSubmissionResolved = errors.New("submission already resolved")
	ErrWithdrawalNotFound = errors.New("withdrawal not found")
	ErrIntentNotFound     = errors.New("payment intent not found")
	ErrIntentNotConfirmed = errors.New("payment intent not confirmed")
	ErrInvalidID          = errors.New("invalid id parameter")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrNothingToUpdate    = errors.New("no updatable fields submitted")
	ErrDatabaseError      = errors.New("database error")
)
