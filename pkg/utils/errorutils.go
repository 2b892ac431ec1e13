// Copyright (c) 2021-2024 SigScalr, Inc.
//
// This file is part of SigLens Observability Solution
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package utils

import (
	"fmt"
)

const NIL_VALUE_ERR = "NIL_VALUE_ERR"
const CONVERSION_ERR = "CONVERSION_ERR"
const CLOCK_UNAVAILABLE_ERR = "CLOCK_UNAVAILABLE_ERR"
const ALLOCATION_ERR = "ALLOCATION_ERR"

// ErrorWithCode combines an error with a standardized error code
type ErrorWithCode struct {
	code string
	err  error
}

// NewErrorWithCode creates a new error with a code
func NewErrorWithCode(code string, err error) *ErrorWithCode {
	return &ErrorWithCode{
		code: code,
		err:  err,
	}
}

// Error implements the error interface
func (ewc *ErrorWithCode) Error() string {
	return fmt.Sprintf("ErrorCode=%s; err=%v", ewc.code, ewc.err)
}

// Unwrap returns the underlying error
func (ewc *ErrorWithCode) Unwrap() error {
	return ewc.err
}

// String implements the stringer interface
func (ewc *ErrorWithCode) String() string {
	return ewc.Error()
}

// WrapErrorf wraps the message with the error
// if err is of type ErrorWithCode, the code is preserved
func WrapErrorf(err error, message string, options ...any) error {
	if err == nil {
		return nil
	}

	if ewc, ok := err.(*ErrorWithCode); ok {
		return NewErrorWithCode(ewc.code, fmt.Errorf(message, options...))
	}

	return fmt.Errorf(message, options...)
}

func IsNilValueError(err error) bool {
	if ewc, ok := err.(*ErrorWithCode); ok {
		return ewc.code == NIL_VALUE_ERR
	}

	return false
}

func IsConversionError(err error) bool {
	if ewc, ok := err.(*ErrorWithCode); ok {
		return ewc.code == CONVERSION_ERR
	}

	return false
}

func IsClockUnavailableError(err error) bool {
	if ewc, ok := err.(*ErrorWithCode); ok {
		return ewc.code == CLOCK_UNAVAILABLE_ERR
	}

	return false
}

func IsAllocationError(err error) bool {
	if ewc, ok := err.(*ErrorWithCode); ok {
		return ewc.code == ALLOCATION_ERR
	}

	return false
}

// IsFatalError reports whether err must terminate the run. Clock and
// allocation failures are never retried.
func IsFatalError(err error) bool {
	return IsClockUnavailableError(err) || IsAllocationError(err)
}
