package setting

import "context"

// Repository is the key/value settings store shared by payroll pool
// settings and invoice defaults.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	GetAll(ctx context.Context) (map[string]string, error)
}
