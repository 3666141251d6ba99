package engine

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"celebrate/internal/core"
	"celebrate/internal/log"
)

// Tier is a display label produced by a threshold table.
type Tier string

// NegativePolicy decides how a table treats signals below zero.
type NegativePolicy string

const (
	// NegativeClamp classifies negative signals as zero.
	NegativeClamp NegativePolicy = "clamp"
	// NegativeReject fails negative signals with an InvalidInputError.
	NegativeReject NegativePolicy = "reject"
	// NegativeLabel maps every negative signal to the table's NegativeTier.
	NegativeLabel NegativePolicy = "label"
)

var (
	ErrNoFallback     = errors.New("threshold table: fallback tier is required")
	ErrDuplicateBound = errors.New("threshold table: duplicate bound")
	ErrInvalidBound   = errors.New("threshold table: bound must be finite")
	ErrEmptyTier      = errors.New("threshold table: empty tier label")
)

// Threshold is one closed upper bound: signals <= Max map to Tier.
type Threshold struct {
	Max  float64
	Tier Tier
}

// ThresholdTable is an ordered, validated classification table.
type ThresholdTable struct {
	name         string
	bounds       []Threshold
	fallback     Tier
	negative     NegativePolicy
	negativeTier Tier
	logger       *log.Logger
}

// TableOption customizes a ThresholdTable.
type TableOption func(*ThresholdTable)

// WithNegativePolicy sets how negative signals are classified.
func WithNegativePolicy(p NegativePolicy) TableOption {
	return func(t *ThresholdTable) { t.negative = p }
}

// WithNegativeTier maps negative signals to tier (implies NegativeLabel).
func WithNegativeTier(tier Tier) TableOption {
	return func(t *ThresholdTable) {
		t.negative = NegativeLabel
		t.negativeTier = tier
	}
}

// WithName labels the table in log records.
func WithName(name string) TableOption {
	return func(t *ThresholdTable) { t.name = name }
}

// WithLogger sets the logger for rejected and adjusted signals. Without it
// the table logs through slog.Default.
func WithLogger(l *log.Logger) TableOption {
	return func(t *ThresholdTable) { t.logger = l }
}

// NewThresholdTable sorts bounds ascending and validates the table.
func NewThresholdTable(bounds []Threshold, fallback Tier, opts ...TableOption) (ThresholdTable, error) {
	t := ThresholdTable{
		bounds:   append([]Threshold(nil), bounds...),
		fallback: fallback,
		negative: NegativeClamp,
	}
	for _, opt := range opts {
		opt(&t)
	}
	if fallback == "" {
		return ThresholdTable{}, ErrNoFallback
	}
	switch t.negative {
	case NegativeClamp, NegativeReject:
	case NegativeLabel:
		if t.negativeTier == "" {
			return ThresholdTable{}, fmt.Errorf("%w for negative signals", ErrEmptyTier)
		}
	default:
		return ThresholdTable{}, fmt.Errorf("threshold table: unknown negative policy %q", t.negative)
	}
	sort.SliceStable(t.bounds, func(i, j int) bool { return t.bounds[i].Max < t.bounds[j].Max })
	for i, b := range t.bounds {
		if math.IsNaN(b.Max) || math.IsInf(b.Max, 0) {
			return ThresholdTable{}, ErrInvalidBound
		}
		if b.Tier == "" {
			return ThresholdTable{}, ErrEmptyTier
		}
		if i > 0 && t.bounds[i-1].Max == b.Max {
			return ThresholdTable{}, fmt.Errorf("%w %v", ErrDuplicateBound, b.Max)
		}
	}
	return t, nil
}

// MustThresholdTable is NewThresholdTable for tables built from constants.
func MustThresholdTable(bounds []Threshold, fallback Tier, opts ...TableOption) ThresholdTable {
	t, err := NewThresholdTable(bounds, fallback, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Classify returns the tier of the first bound >= signal, or the fallback.
func (t ThresholdTable) Classify(signal float64) (Tier, error) {
	if math.IsNaN(signal) || math.IsInf(signal, 0) {
		return "", t.reject(signal, "signal must be finite")
	}
	if signal < 0 {
		switch t.negative {
		case NegativeReject:
			return "", t.reject(signal, "negative signals are rejected")
		case NegativeLabel:
			t.classifyLogger().Debug("Negative signal labeled",
				log.FieldTable, t.name,
				log.FieldSignal, signal,
				log.FieldTier, t.negativeTier)
			return t.negativeTier, nil
		default:
			signal = 0
		}
	}
	for _, b := range t.bounds {
		if signal <= b.Max {
			return b.Tier, nil
		}
	}
	return t.fallback, nil
}

func (t ThresholdTable) reject(signal float64, reason string) error {
	t.classifyLogger().Warn("Rejected classifier signal",
		log.FieldOperation, log.OpClassify,
		log.FieldTable, t.name,
		log.FieldSignal, signal,
		"reason", reason)
	return &core.InvalidInputError{Signal: signal, Reason: reason}
}

func (t ThresholdTable) classifyLogger() *log.Logger {
	if t.logger != nil {
		return t.logger
	}
	return log.OrDefault(nil, log.ComponentClassify)
}

// Name returns the label given with WithName.
func (t ThresholdTable) Name() string {
	return t.name
}

// Tiers lists every label the table can produce, in ascending bound order.
func (t ThresholdTable) Tiers() []Tier {
	out := make([]Tier, 0, len(t.bounds)+2)
	if t.negative == NegativeLabel {
		out = append(out, t.negativeTier)
	}
	for _, b := range t.bounds {
		out = append(out, b.Tier)
	}
	return append(out, t.fallback)
}

// Bounds returns a copy of the sorted bounds.
func (t ThresholdTable) Bounds() []Threshold {
	return append([]Threshold(nil), t.bounds...)
}

// Fallback returns the catch-all tier.
func (t ThresholdTable) Fallback() Tier {
	return t.fallback
}

// Negative returns the negative-signal policy.
func (t ThresholdTable) Negative() NegativePolicy {
	return t.negative
}
