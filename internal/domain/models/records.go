package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat decodes a JSON number that providers sometimes serialize as a
// string (with optional "$" and thousands separators). Null and unparseable
// values decode to zero; normalization happens once, at ingestion.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(strings.ReplaceAll(strings.TrimPrefix(s, "$"), ",", ""))
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

func (f FlexFloat) Float64() float64 { return float64(f) }

// TradeRecord is one congressional trade disclosure.
type TradeRecord struct {
	Ticker          string    `json:"Ticker"`
	Representative  string    `json:"Representative"`
	Party           string    `json:"Party,omitempty"`
	Transaction     string    `json:"Transaction"`
	Amount          FlexFloat `json:"Amount"`
	Range           string    `json:"Range,omitempty"`
	House           string    `json:"House,omitempty"`
	TransactionDate string    `json:"TransactionDate"`
	ReportDate      string    `json:"ReportDate"`
}

// LobbyingRecord is one lobbying disclosure.
type LobbyingRecord struct {
	Ticker     string    `json:"Ticker"`
	Client     string    `json:"Client"`
	Registrant string    `json:"Registrant,omitempty"`
	Issue      string    `json:"Issue,omitempty"`
	Amount     FlexFloat `json:"Amount"`
	Date       string    `json:"Date"`
}

// ContractRecord is one government contract award.
type ContractRecord struct {
	Ticker      string    `json:"Ticker"`
	Agency      string    `json:"Agency"`
	Description string    `json:"Description,omitempty"`
	Amount      FlexFloat `json:"Amount"`
	Date        string    `json:"Date"`
}

// NewsArticle is a normalized headline from the news provider.
type NewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Type        string `json:"type"` // "Top Story" or "Tech"
}
