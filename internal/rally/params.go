package rally

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrMissingParam signals a required parameter absent from the track config.
	ErrMissingParam = errors.New("missing parameter")
	// ErrInvalidParam signals a parameter of the wrong type.
	ErrInvalidParam = errors.New("invalid parameter")
)

// MissingParamError wraps ErrMissingParam with the parameter name.
type MissingParamError struct {
	Key string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMissingParam.Error(), e.Key)
}

func (e *MissingParamError) Unwrap() error { return ErrMissingParam }

// Params is the read-only operation parameter map supplied by the harness.
type Params map[string]any

// Bool returns a boolean parameter.
func (p Params) Bool(key string) (bool, error) {
	v, ok := p[key]
	if !ok {
		return false, &MissingParamError{Key: key}
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q must be a bool, got %T", ErrInvalidParam, key, v)
	}
	return b, nil
}

// Int returns an integer parameter. Whole-valued floats (JSON numbers) are accepted.
func (p Params) Int(key string) (int, error) {
	v, ok := p[key]
	if !ok {
		return 0, &MissingParamError{Key: key}
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case int32:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%w: %q must be an integer, got %v", ErrInvalidParam, key, n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: %q must be an integer, got %T", ErrInvalidParam, key, v)
	}
}

// String returns a string parameter.
func (p Params) String(key string) (string, error) {
	v, ok := p[key]
	if !ok {
		return "", &MissingParamError{Key: key}
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q must be a string, got %T", ErrInvalidParam, key, v)
	}
	return s, nil
}

// StringOr returns a string parameter or def when the key is absent or not a string.
func (p Params) StringOr(key, def string) string {
	if s, err := p.String(key); err == nil {
		return s
	}
	return def
}
