// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package semerr defines the two error kinds surfaced while lowering:
// semantic errors, reported to the user for invalid programs, and
// internal errors, raised on code paths the compiler believes cannot
// trigger.
package semerr

import (
	"github.com/pkg/errors"
)

type (
	// Semantic is a user-facing error raised for type, shape, or
	// signedness violations in the program being lowered.
	Semantic struct {
		err error
	}

	// Internal flags a compiler bug rather than a user mistake.
	Internal struct {
		err error
	}
)

// Errorf returns a new semantic error for the user.
func Errorf(format string, a ...any) error {
	return &Semantic{err: errors.Errorf(format, a...)}
}

// Error returns a string description of the error.
func (e *Semantic) Error() string { return e.err.Error() }

// Unwrap returns the underlying error.
func (e *Semantic) Unwrap() error { return e.err }

// Internalf returns a new internal error.
func Internalf(format string, a ...any) error {
	return &Internal{err: errors.Errorf(format, a...)}
}

// Unreachable returns the internal error reported when a code path
// believed impossible has been taken.
func Unreachable(key string) error {
	return Internalf("encountered unimplemented code path in `%s`. This is likely a bug on our side", key)
}

// Error returns a string description of the error.
func (e *Internal) Error() string { return e.err.Error() }

// Unwrap returns the underlying error.
func (e *Internal) Unwrap() error { return e.err }

// IsSemantic reports whether err or any error it wraps is a semantic error.
func IsSemantic(err error) bool {
	for ; err != nil; err = unwrap(err) {
		if _, ok := err.(*Semantic); ok {
			return true
		}
	}
	return false
}

// IsInternal reports whether err or any error it wraps is an internal error.
func IsInternal(err error) bool {
	for ; err != nil; err = unwrap(err) {
		if _, ok := err.(*Internal); ok {
			return true
		}
	}
	return false
}

func unwrap(err error) error {
	switch err := err.(type) {
	case interface{ Unwrap() error }:
		return err.Unwrap()
	case interface{ Cause() error }:
		return err.Cause()
	}
	return nil
}
