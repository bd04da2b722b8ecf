package sku

import (
	"fmt"

	"github.com/google/uuid"
)

// ValidationError reports malformed input. It is always raised before
// any sequence number is allocated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConflictError reports a (tenant_id, human_sku) uniqueness violation
// at commit time. Correct allocator serialization makes this
// unreachable, so it indicates a consistency bug and is never retried.
type ConflictError struct {
	TenantID uuid.UUID
	HumanSKU string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("duplicate human_sku %q for tenant %s", e.HumanSKU, e.TenantID)
}

// StorageError wraps a transaction, connectivity, or lock failure. The
// enclosing transaction has rolled back, so retrying the whole request
// is safe.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
