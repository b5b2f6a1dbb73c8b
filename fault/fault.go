// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ProcessError("already initialised")
	ErrBrokenParentLink     = InvalidError("parent link does not point at the actual parent")
	ErrInvalidHeight        = InvalidError("stored height differs from the computed height")
	ErrInvalidLoggerChannel = ProcessError("invalid logger channel")
	ErrOutOfOrder           = InvalidError("values are not in ascending order")
	ErrUnbalancedNode       = InvalidError("sub-tree heights differ by more than one")
	ErrValueAlreadyExists   = ExistsError("value already exists")
	ErrValueNotFound        = NotFoundError("value not found")
	ErrWrongCount           = InvalidError("count differs from the number of reachable nodes")
	ErrWrongExtremeCache    = InvalidError("cached extreme does not match the tree content")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
