package models

import (
	"errors"
	"fmt"
)

type (
	MapErrs     map[string]ErrorDetail
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

func GetErrMap(code string, args ...string) ErrorDetail {
	v, ok := MapErrors[code]
	if !ok {
		return ErrorDetail{
			Code:         code,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 {
		v.ErrorMessage = fmt.Errorf("%s: %s", v.ErrorMessage, args[0])
	}

	return v
}

const (
	ErrKeyRulePatternInvalid = "RULE_PATTERN_INVALID"
	ErrKeyRuleNotFound       = "RULE_NOT_FOUND"

	ErrKeySplitTooFew         = "SPLIT_TOO_FEW"
	ErrKeySplitAmountMismatch = "SPLIT_AMOUNT_MISMATCH"

	ErrKeySessionAlreadyActive  = "SESSION_ALREADY_ACTIVE"
	ErrKeySessionNotFound       = "SESSION_NOT_FOUND"
	ErrKeySessionInvalidState   = "SESSION_INVALID_STATE"
	ErrKeySessionNotCancellable = "SESSION_NOT_CANCELLABLE"

	ErrKeyTransactionNotFound    = "TRANSACTION_NOT_FOUND"
	ErrKeyTransactionNotRejected = "TRANSACTION_NOT_REJECTED"

	ErrKeySettingNotFound = "SETTING_NOT_FOUND"

	ErrKeyDatabaseError = "DATABASE_ERROR"
)

var MapErrors = MapErrs{
	ErrKeyRulePatternInvalid: {
		Code:         ErrKeyRulePatternInvalid,
		ErrorMessage: errors.New("pattern does not compile under its declared kind"),
	},
	ErrKeyRuleNotFound: {
		Code:         ErrKeyRuleNotFound,
		ErrorMessage: errors.New("rule not found"),
	},
	ErrKeySplitTooFew: {
		Code:         ErrKeySplitTooFew,
		ErrorMessage: errors.New("a split set needs at least two splits"),
	},
	ErrKeySplitAmountMismatch: {
		Code:         ErrKeySplitAmountMismatch,
		ErrorMessage: errors.New("split amounts do not sum to the transaction amount"),
	},
	ErrKeySessionAlreadyActive: {
		Code:         ErrKeySessionAlreadyActive,
		ErrorMessage: errors.New("a sync session is already active"),
	},
	ErrKeySessionNotFound: {
		Code:         ErrKeySessionNotFound,
		ErrorMessage: errors.New("no sync session is active"),
	},
	ErrKeySessionInvalidState: {
		Code:         ErrKeySessionInvalidState,
		ErrorMessage: errors.New("operation not allowed in the session's current state"),
	},
	ErrKeySessionNotCancellable: {
		Code:         ErrKeySessionNotCancellable,
		ErrorMessage: errors.New("session can no longer be cancelled"),
	},
	ErrKeyTransactionNotFound: {
		Code:         ErrKeyTransactionNotFound,
		ErrorMessage: errors.New("transaction not found in the active session"),
	},
	ErrKeyTransactionNotRejected: {
		Code:         ErrKeyTransactionNotRejected,
		ErrorMessage: errors.New("only ledger-rejected transactions can be re-imported"),
	},
	ErrKeySettingNotFound: {
		Code:         ErrKeySettingNotFound,
		ErrorMessage: errors.New("setting not found"),
	},
	ErrKeyDatabaseError: {
		Code:         ErrKeyDatabaseError,
		ErrorMessage: errors.New("database error"),
	},
}
