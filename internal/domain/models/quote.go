package models

// Quote is a point-in-time snapshot for one ticker, from the provider's
// (c, d, dp, o, pc) fields.
type Quote struct {
	Current       float64 `json:"current"`
	Change        float64 `json:"change"`
	PercentChange float64 `json:"percentChange"`
	Open          float64 `json:"open"`
	PreviousClose float64 `json:"previousClose"`
}

// WatchlistState maps an uppercase ticker to its last-known quote. A nil
// quote is the single "not yet fetched" state; there is no other sentinel.
type WatchlistState map[string]*Quote

// Clone returns a shallow-independent copy (quote pointers are shared, the
// map is not).
func (w WatchlistState) Clone() WatchlistState {
	out := make(WatchlistState, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// Tickers returns the tracked symbols in map order.
func (w WatchlistState) Tickers() []string {
	out := make([]string, 0, len(w))
	for k := range w {
		out = append(out, k)
	}
	return out
}
