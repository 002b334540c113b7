// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBadCount             = InvalidError("node count does not match traversal")
	ErrBadHeight            = InvalidError("node height is inconsistent")
	ErrBadOrder             = InvalidError("keys are out of order")
	ErrBadParent            = InvalidError("parent link is inconsistent")
	ErrBadSize              = InvalidError("node size is inconsistent")
	ErrDuplicateKey         = InvalidError("duplicate key")
	ErrInvalidConfiguration = InvalidError("configuration must return a table")
	ErrInvalidIndex         = InvalidError("invalid index")
	ErrInvalidKey           = InvalidError("invalid key")
	ErrInvalidKeyType       = InvalidError("invalid key type")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrMissingArgument      = InvalidError("missing argument")
	ErrUnbalanced           = InvalidError("tree is unbalanced")
	ErrUnknownCommand       = InvalidError("unknown command")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrCheckFailed          = ProcessError("consistency check failed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
