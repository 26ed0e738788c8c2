package position

import (
	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/token"
)

// Source names the data source a query was answered from
type Source string

const (
	SourceIndexed Source = "indexed"
	SourceLive    Source = "live"
)

// Config is the engine configuration
type Config struct {
	// EnabledTemplates are the templates served, the others are rejected as not supported
	EnabledTemplates []domain.Template
	// MaxWorkers bounds the concurrent per-token lookups of a live read
	MaxWorkers int
}

// ListOptions holds the paging and source options of a list query
type ListOptions struct {
	// Offset and Limit are nil when not requested
	Offset         *int
	Limit          *int
	IncludeDetails bool
	// EnableIndex answers from the relational index instead of the ledger
	EnableIndex bool
}

// GetOptions holds the options of a single position query
type GetOptions struct {
	IncludeDetails bool
	EnableIndex    bool
}

// ResultSet is the pagination metadata of a list query
type ResultSet struct {
	// Count is the number of positions passing the zero filter, before offset and limit
	Count uint64
	// Offset and Limit echo the request
	Offset *int
	Limit  *int
	// Total is the number of listed tokens of the template, before the zero filter
	Total uint64
}

// Position is one token balance of an account
type Position struct {
	ListingID    int64
	TokenAddress string
	Template     domain.Template
	Values       token.Values
	// Details is set when token details were requested
	Details token.Details
}

// Page is the result of a list query
type Page struct {
	ResultSet ResultSet
	Positions []Position
}
