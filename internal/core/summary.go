package core

// CategoryCount is the number of records carrying a category tag.
type CategoryCount struct {
	Name  string
	Count int
}

// AggregateResult is a summary derived from one record snapshot.
type AggregateResult struct {
	TotalCount   int
	TotalValue   Money
	TotalSavings Money
	TrendCount   int // records whose trend is the decreasing tag
	ByCategory   []CategoryCount
	Skipped      []ParseError // only populated under the skip policy
}

// HasSavings reports whether any record is priced below its original price.
func (a AggregateResult) HasSavings() bool {
	return a.TotalSavings.Cents > 0
}
