package store

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-position-api/internal/domain"
)

// positionStatement describes the fixed parts of one template's position statement
type positionStatement struct {
	metadataTable string
	// usedJoin pre-sums coupon consumption, empty for templates without it
	usedJoin string
	usedExpr string
	// transferExpr yields the transfer history signal
	transferExpr string
	// nonZero is the inclusion predicate over the matched columns
	nonZero string
}

const lockedJoin = `
	LEFT JOIN (
		SELECT token_address, SUM(value) AS locked
		FROM locked_positions
		WHERE account_address = @account
		GROUP BY token_address
	) lk ON lk.token_address = l.token_address`

const consumedJoin = `
	LEFT JOIN (
		SELECT token_address, SUM(amount) AS used
		FROM consume_coupons
		WHERE account_address = @account
		GROUP BY token_address
	) cc ON cc.token_address = l.token_address`

const transferExists = `EXISTS (
		SELECT 1 FROM transfers tr
		WHERE tr.token_address = l.token_address AND tr.to_address = @account
	)`

// positionStatementTemplate is expanded once per template at package initialization.
// total is taken before the non-zero predicate, count after it, and the page is cut last.
const positionStatementTemplate = `
WITH matched AS (
	SELECT
		l.id AS listing_id,
		l.token_address,
		COALESCE(p.balance, 0) AS balance,
		COALESCE(p.pending_transfer, 0) AS pending_transfer,
		COALESCE(p.exchange_balance, 0) AS exchange_balance,
		COALESCE(p.exchange_commitment, 0) AS exchange_commitment,
		COALESCE(lk.locked, 0) AS locked,
		%[2]s AS used,
		%[3]s AS has_transfer
	FROM listings l
	JOIN %[1]s t ON t.token_address = l.token_address
	LEFT JOIN positions p ON p.token_address = l.token_address AND p.account_address = @account%[4]s%[5]s
	WHERE (@token = '' OR l.token_address = @token)
),
filtered AS (
	SELECT * FROM matched
	WHERE %[6]s
),
counts AS (
	SELECT
		(SELECT COUNT(*) FROM matched) AS total,
		(SELECT COUNT(*) FROM filtered) AS count
)
SELECT
	counts.total,
	counts.count,
	page.listing_id,
	page.token_address,
	page.balance,
	page.pending_transfer,
	page.exchange_balance,
	page.exchange_commitment,
	page.locked,
	page.used,
	page.has_transfer
FROM counts
LEFT JOIN LATERAL (
	SELECT * FROM filtered
	ORDER BY listing_id
	OFFSET @offset
	LIMIT @limit
) page ON TRUE
ORDER BY page.listing_id`

var positionStatements = map[domain.Template]positionStatement{
	domain.TemplateBond: {
		metadataTable: "bond_tokens",
		usedExpr:      "0",
		transferExpr:  "FALSE",
		nonZero:       "balance <> 0 OR pending_transfer <> 0 OR exchange_balance <> 0 OR exchange_commitment <> 0 OR locked <> 0",
	},
	domain.TemplateShare: {
		metadataTable: "share_tokens",
		usedExpr:      "0",
		transferExpr:  "FALSE",
		nonZero:       "balance <> 0 OR pending_transfer <> 0 OR exchange_balance <> 0 OR exchange_commitment <> 0 OR locked <> 0",
	},
	domain.TemplateMembership: {
		metadataTable: "membership_tokens",
		usedExpr:      "0",
		transferExpr:  "FALSE",
		nonZero:       "balance <> 0 OR exchange_balance <> 0 OR exchange_commitment <> 0",
	},
	domain.TemplateCoupon: {
		metadataTable: "coupon_tokens",
		usedJoin:      consumedJoin,
		usedExpr:      "COALESCE(cc.used, 0)",
		transferExpr:  transferExists,
		nonZero:       "balance <> 0 OR exchange_balance <> 0 OR exchange_commitment <> 0 OR used <> 0 OR has_transfer",
	},
}

// positionQueries holds the expanded statement of each template
var positionQueries = compilePositionQueries()

func compilePositionQueries() map[domain.Template]string {
	queries := make(map[domain.Template]string, len(positionStatements))
	for template, stmt := range positionStatements {
		queries[template] = fmt.Sprintf(positionStatementTemplate,
			stmt.metadataTable,
			stmt.usedExpr,
			stmt.transferExpr,
			lockedJoin,
			stmt.usedJoin,
			stmt.nonZero,
		)
	}
	return queries
}

// positionPageRow is the scan target of a position statement.
// Page columns are NULL when the page is empty.
type positionPageRow struct {
	Total              uint64
	Count              uint64
	ListingID          *int64
	TokenAddress       *string
	Balance            decimal.NullDecimal
	PendingTransfer    decimal.NullDecimal
	ExchangeBalance    decimal.NullDecimal
	ExchangeCommitment decimal.NullDecimal
	Locked             decimal.NullDecimal
	Used               decimal.NullDecimal
	HasTransfer        *bool
}

const accountAdjustmentsQuery = `
SELECT
	l.token_address,
	COALESCE((
		SELECT SUM(lp.value) FROM locked_positions lp
		WHERE lp.token_address = l.token_address AND lp.account_address = @account
	), 0) AS locked,
	COALESCE((
		SELECT SUM(cc.amount) FROM consume_coupons cc
		WHERE cc.token_address = l.token_address AND cc.account_address = @account
	), 0) AS used,
	EXISTS (
		SELECT 1 FROM transfers tr
		WHERE tr.token_address = l.token_address AND tr.to_address = @account
	) AS has_transfer
FROM listings l
WHERE l.token_address IN @tokens`
