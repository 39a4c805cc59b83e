package report

import (
	"github.com/go-playground/validator/v10"

	dErrors "fundus/pkg/domain-errors"
)

// DefaultDaysBack is the trailing window applied when a request does not
// name one.
const DefaultDaysBack = 30

// Config is the per-request tuning surface of a report build.
type Config struct {
	// DaysBack bounds the meter-reading window. Zero means the default.
	DaysBack int `validate:"gte=0"`
	// AssumedCapRate capitalizes NOI into an implied value. Required.
	AssumedCapRate float64 `validate:"gt=0"`
	// LoanBalance, when supplied, yields the loan-to-value field.
	LoanBalance *float64 `validate:"omitempty,gte=0"`
	// OpexAnnual is subtracted from the annualized rent roll.
	OpexAnnual float64 `validate:"gte=0"`
}

var validate = validator.New()

// withDefaults resolves unset fields without mutating the caller's copy.
func (c Config) withDefaults() Config {
	if c.DaysBack == 0 {
		c.DaysBack = DefaultDaysBack
	}
	return c
}

func (c Config) check() error {
	if err := validate.Struct(c); err != nil {
		return dErrors.Wrap(dErrors.CodeInvalidInput, "invalid report config", err)
	}
	return nil
}
