package ticker

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fincrack/stocklens/internal/domain/models"
)

// UnresolvedError reports an input that matched no alias table entry.
type UnresolvedError struct {
	Input string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("could not find ticker for input: %q, please try a valid company name or ticker", e.Input)
}

// Resolver maps free-text company names and raw ticker symbols to canonical
// uppercase tickers.
//
// The alias table is built once at startup and never mutated afterwards, so
// concurrent lookups from request handlers need no locking.
type Resolver struct {
	aliases map[string]string
}

// NewResolver builds the alias table from the static company dataset.
//
// Each record contributes two entries: the normalized company title and the
// uppercase ticker itself, both mapping to the uppercase ticker. Later
// records win on key collisions.
func NewResolver(records []models.CompanyRecord) *Resolver {
	aliases := make(map[string]string, 2*len(records))
	for _, rec := range records {
		symbol := strings.ToUpper(rec.Ticker)
		if symbol == "" {
			continue
		}
		aliases[Normalize(rec.Title)] = symbol
		aliases[symbol] = symbol
	}
	return &Resolver{aliases: aliases}
}

// Resolve turns raw user input into a canonical ticker. The uppercase input
// is tried first so exact ticker matches win over name normalization; the
// normalized form is the fallback. Returns *UnresolvedError when neither
// lookup matches.
func (r *Resolver) Resolve(input string) (string, error) {
	if symbol, ok := r.aliases[strings.ToUpper(strings.TrimSpace(input))]; ok {
		return symbol, nil
	}
	if symbol, ok := r.aliases[Normalize(input)]; ok {
		return symbol, nil
	}
	return "", &UnresolvedError{Input: input}
}

// Size returns the number of alias entries; used by the readiness probe.
func (r *Resolver) Size() int {
	return len(r.aliases)
}

// LoadCompanyRecords reads the static ticker dataset: a JSON object keyed by
// row index, each value holding a company title and ticker symbol.
func LoadCompanyRecords(path string) ([]models.CompanyRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ticker dataset: %w", err)
	}
	var indexed map[string]models.CompanyRecord
	if err := json.Unmarshal(data, &indexed); err != nil {
		return nil, fmt.Errorf("parse ticker dataset: %w", err)
	}
	records := make([]models.CompanyRecord, 0, len(indexed))
	for _, rec := range indexed {
		records = append(records, rec)
	}
	return records, nil
}
