package salary

import "errors"

var (
	ErrTariffPointNotFound  = errors.New("no matching tariff point")
	ErrDuplicateTariffPoint = errors.New("duplicate tariff point")
	ErrLabelNotFound        = errors.New("label not found")
	ErrDuplicateLabel       = errors.New("duplicate label")
)
