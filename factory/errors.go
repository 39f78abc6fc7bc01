// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package factory

import "errors"

var (
	ErrMaterializeFailed = errors.New("could not materialize account")
	ErrInitializeFailed  = errors.New("could not initialize account")
)
