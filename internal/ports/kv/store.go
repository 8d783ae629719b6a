package kv

import (
	"context"
	"errors"
)

// ErrNotFound indica que la clave no existe.
var ErrNotFound = errors.New("kv: key not found")

// Store es el área persistente clave → bytes. Cada Set sobrescribe la clave
// completa; no hay transacciones entre claves.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
