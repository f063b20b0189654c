package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNoRowsAffected      = errors.New("no rows affected")
	ErrValidation          = errors.New("validation failed")
	ErrDataNotFound        = errors.New("data not found")
	ErrDataExist           = errors.New("data exist")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnableToCreate      = errors.New("unable to create data")
	ErrUnableToUpdate      = errors.New("unable to update data")
	ErrIDEmpty             = errors.New("ID is empty")

	ErrBankAuthFailed      = errors.New("bank authentication failed")
	ErrBankChallengeFailed = errors.New("bank challenge confirmation failed")
	ErrBankFetchFailed     = errors.New("bank transaction fetch failed")
	ErrLedgerUnavailable   = errors.New("ledger call failed")

	ErrNoRows = sql.ErrNoRows
)

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}
