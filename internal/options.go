package internal

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const minMargin = 1.5

type Options struct {
	// Multiple of the larger bounds dimension used to size the supra triangle.
	Margin float64
	// Input points closer than this on both axes are merged. Zero means exact
	// equality.
	Tolerance float64
	// Receives per-insertion debug output. Never nil after Validate.
	Logger *zap.Logger
}

func DefaultOptions() Options {
	return Options{
		Margin: DefaultMargin,
		Logger: zap.NewNop(),
	}
}

func (o *Options) Validate() error {
	// The supra triangle's inscribed circle has a radius of about half of
	// Margin*max(width, height). Below minMargin it no longer covers the corners
	// of the bounding box.
	if math.IsNaN(o.Margin) || math.IsInf(o.Margin, 0) || o.Margin < minMargin {
		return errors.Wrapf(ErrInvalidOptions, "margin %v must be at least %v", o.Margin, minMargin)
	}
	if math.IsNaN(o.Tolerance) || o.Tolerance < 0 || math.IsInf(o.Tolerance, 0) {
		return errors.Wrapf(ErrInvalidOptions, "tolerance %v must be finite and non-negative", o.Tolerance)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return nil
}
