package config

import (
	"errors"
	"fmt"
	"math"
)

// FieldError reports one invalid EnemyTypeConfig field.
type FieldError struct {
	Field  string
	Value  any
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s=%v: %s", e.Field, e.Value, e.Reason)
}

// ValidateEnemyType checks the values an enemy needs to behave sanely.
// All violations are returned joined; nil means the type can be spawned.
func ValidateEnemyType(t EnemyTypeConfig) error {
	var errs []error

	if t.MaxHP <= 0 {
		errs = append(errs, &FieldError{Field: "MaxHP", Value: t.MaxHP, Reason: "must be positive"})
	}
	if t.AttackIntervalMs < 0 {
		errs = append(errs, &FieldError{Field: "AttackIntervalMs", Value: t.AttackIntervalMs, Reason: "must not be negative"})
	}

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"Speed", t.Speed},
		{"DetectRange", t.DetectRange},
		{"AttackRange", t.AttackRange},
		{"Damage", t.Damage},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			errs = append(errs, &FieldError{Field: f.name, Value: f.value, Reason: "must be finite"})
		} else if f.value < 0 {
			errs = append(errs, &FieldError{Field: f.name, Value: f.value, Reason: "must not be negative"})
		}
	}

	return errors.Join(errs...)
}
