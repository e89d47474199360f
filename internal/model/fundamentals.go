package model

// FundamentalRow is one label/value pair extracted from a company page.
type FundamentalRow struct {
	Label string
	Value string
}

// FundamentalsReport holds the successfully parsed rows in display order,
// plus a count of rows that failed to decompose and were skipped.
type FundamentalsReport struct {
	Symbol  string
	Rows    []FundamentalRow
	Skipped int
}

// Empty reports whether nothing at all could be extracted.
func (r *FundamentalsReport) Empty() bool { return len(r.Rows) == 0 }
