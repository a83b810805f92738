// Copyright 2025 The gosci Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

//go:build !nodense

package matrix

import (
	"github.com/gosci-dev/gosci/internal/dense"
	"github.com/gosci-dev/gosci/internal/matrix"
)

// The gonum-backed dense backend is registered by default. Building with
// the nodense tag excludes it, leaving decomposition-based operations
// unavailable at the interface rather than silently degraded.
func init() {
	matrix.SetDenseBackend(dense.Backend{})
}
