package stores

import (
	"errors"
	"fmt"
)

// ErrNotFound dikembalikan saat lookup by id tidak menemukan baris
var ErrNotFound = errors.New("record not found")

// ValidationError menandakan input yang ditolak sebelum menyentuh database
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// StoreError membungkus kegagalan dari database yang bukan NotFound/validasi
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
