// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides small helpers for logging and handling
// errors inline, in addition to re-exporting the standard library
// errors functions that this module uses.
package errors

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"
)

// New returns an error with the given text, per [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target, per [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Log takes the given error and logs it if it is non-nil, adding the
// caller's location, and returns it unchanged either way, allowing
// inline logging in return statements.
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + callerInfo())
	}
	return err
}

// Log1 takes the given value and error and logs the error if it is
// non-nil, returning the value, allowing inline logging in single-value
// contexts.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + callerInfo())
	}
	return v
}

// Must panics if the given error is non-nil, for impossible error
// conditions during initialization.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 takes the given value and error and panics if the error is
// non-nil, returning the value.
func Must1[T any](v T, err error) T {
	Must(err)
	return v
}

// Ignore1 ignores the error and returns only the value.
func Ignore1[T any](v T, err error) T {
	return v
}

// callerInfo returns the file and line of the caller of this package.
func callerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return ""
	}
	return file + ":" + strconv.Itoa(line)
}
