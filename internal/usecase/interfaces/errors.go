package interfaces

import "errors"

// ErrDuplicate is returned by repositories when a write violates a unique
// constraint (one pricing rule per material, one subscription per email).
var ErrDuplicate = errors.New("duplicate record")
