package engine

import (
	"errors"
	"fmt"
	"math"

	"celebrate/internal/core"
	"celebrate/internal/log"
)

// ParsePolicy decides what Aggregate does with a malformed currency field.
// The zero value is deliberately invalid: callers must choose.
type ParsePolicy int

const (
	// ParseAbort stops at the first malformed record and returns its ParseError.
	ParseAbort ParsePolicy = iota + 1
	// ParseSkip leaves malformed records out of the sums and reports them in Skipped.
	ParseSkip
)

var ErrParsePolicyUnset = errors.New("aggregate: parse policy not set")

// String implements fmt.Stringer
func (p ParsePolicy) String() string {
	switch p {
	case ParseAbort:
		return "abort"
	case ParseSkip:
		return "skip"
	default:
		return "unset"
	}
}

// ParsePolicyFromString maps "abort" or "skip" to a policy.
func ParsePolicyFromString(s string) (ParsePolicy, error) {
	switch s {
	case "abort":
		return ParseAbort, nil
	case "skip":
		return ParseSkip, nil
	default:
		return 0, fmt.Errorf("invalid parse policy %q: must be abort or skip", s)
	}
}

// AggregateSpec tells Aggregate where the money and trend fields live.
type AggregateSpec[T any] struct {
	ID func(T) string
	// Price returns the current display price. Nil leaves TotalValue at zero.
	Price func(T) string
	// OriginalPrice returns the pre-discount price, "" when there is none.
	OriginalPrice func(T) string
	// Trend and DecreasingTrend drive TrendCount.
	Trend           func(T) string
	DecreasingTrend string
	// Category fills ByCategory when set.
	Category func(T) string
	Policy   ParsePolicy
	Logger   *log.Logger
}

// Aggregate reduces records to counts and cent-exact money totals.
func Aggregate[T any](records []T, spec AggregateSpec[T]) (core.AggregateResult, error) {
	var res core.AggregateResult
	if spec.Policy != ParseAbort && spec.Policy != ParseSkip {
		return res, ErrParsePolicyUnset
	}
	logger := log.OrDefault(spec.Logger, log.ComponentAggregate)

	categories := make(map[string]int)
	for _, r := range records {
		res.TotalCount++

		if spec.Trend != nil && spec.Trend(r) == spec.DecreasingTrend {
			res.TrendCount++
		}
		if spec.Category != nil {
			tag := spec.Category(r)
			i, ok := categories[tag]
			if !ok {
				i = len(res.ByCategory)
				categories[tag] = i
				res.ByCategory = append(res.ByCategory, core.CategoryCount{Name: tag})
			}
			res.ByCategory[i].Count++
		}

		if spec.Price == nil {
			continue
		}
		price, saving, perr := recordMoney(r, spec)
		if perr == nil {
			perr = checkOverflow(r, spec, res, price, saving)
		}
		if perr != nil {
			if spec.Policy == ParseAbort {
				return core.AggregateResult{}, perr
			}
			logger.Warn("Skipping record with malformed price",
				log.FieldOperation, log.OpAggregate,
				log.FieldRecordID, perr.RecordID,
				log.FieldRecordField, perr.Field,
				log.FieldValue, perr.Value)
			res.Skipped = append(res.Skipped, *perr)
			continue
		}
		res.TotalValue.Cents += price.Cents
		res.TotalSavings.Cents += saving.Cents
	}
	return res, nil
}

// recordMoney parses the current price and the saving against the original
// price. A record contributes to neither sum unless both parse.
func recordMoney[T any](r T, spec AggregateSpec[T]) (price, saving core.Money, perr *core.ParseError) {
	raw := spec.Price(r)
	price, err := core.ParsePrice(raw)
	if err != nil {
		return price, saving, newParseError(r, spec, "price", raw, err)
	}
	if spec.OriginalPrice == nil {
		return price, saving, nil
	}
	rawOrig := spec.OriginalPrice(r)
	if rawOrig == "" {
		return price, saving, nil
	}
	orig, err := core.ParsePrice(rawOrig)
	if err != nil {
		return price, saving, newParseError(r, spec, "original_price", rawOrig, err)
	}
	if orig.Cents > price.Cents {
		saving.Cents = orig.Cents - price.Cents
	}
	return price, saving, nil
}

// checkOverflow rejects a record whose amounts would wrap either sum.
func checkOverflow[T any](r T, spec AggregateSpec[T], res core.AggregateResult, price, saving core.Money) *core.ParseError {
	if price.Cents > math.MaxInt64-res.TotalValue.Cents {
		return newParseError(r, spec, "price", spec.Price(r), core.ErrTotalOverflow)
	}
	if saving.Cents > math.MaxInt64-res.TotalSavings.Cents {
		return newParseError(r, spec, "original_price", spec.OriginalPrice(r), core.ErrTotalOverflow)
	}
	return nil
}

func newParseError[T any](r T, spec AggregateSpec[T], field, value string, err error) *core.ParseError {
	id := ""
	if spec.ID != nil {
		id = spec.ID(r)
	}
	return &core.ParseError{RecordID: id, Field: field, Value: value, Err: err}
}
