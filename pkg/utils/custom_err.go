package utils

import "errors"

var (
	ErrInvalidMeasurement = errors.New("invalid measurement")
	ErrFeatureMismatch    = errors.New("feature vector does not match the trained column set")
	ErrInferenceFailure   = errors.New("inference failure")
)
