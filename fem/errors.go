// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "errors"

// error kinds reported by Model and solvers. Use errors.Is to test for them
var (
	ErrDuplicateId    = errors.New("duplicate node id")
	ErrNodeNotFound   = errors.New("node not found")
	ErrInvalidDof     = errors.New("invalid local dof index")
	ErrSingularSystem = errors.New("singular system")
)
