// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/packbits

package packbits

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrEmptyInput     = errors.New("input is empty")
	ErrNegativeOutLen = errors.New("output length must be non-negative")
	ErrNegativeStart  = errors.New("window start must be non-negative")
	ErrNilReader      = errors.New("reader is nil")
	ErrShortOutput    = errors.New("output ended before expected length")
	ErrUnexpectedEOF  = errors.New("unexpected end of input inside run")
)
