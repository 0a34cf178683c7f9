package sentinel

import (
	"errors"
	"fmt"
)

// Sentinel errors for infrastructure facts. Stores return these (optionally wrapped)
// so services can translate them into domain errors.
//
//   - ErrNotFound: entity does not exist in store
//   - ErrConflict: a storage constraint refused the write (unique key, foreign key)
//   - ErrDuplicate: the client identity (PESEL) unique key refused the write;
//     errors.Is also matches ErrConflict
//
// For rule violations use pkg/domain-errors directly.
var (
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("conflict")
	ErrDuplicate = fmt.Errorf("duplicate identity: %w", ErrConflict)
)
