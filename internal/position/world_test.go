package position_test

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/logger"
	"github.com/feral-file/ff-position-api/internal/position"
	"github.com/feral-file/ff-position-api/internal/registry"
	"github.com/feral-file/ff-position-api/internal/store"
	"github.com/feral-file/ff-position-api/internal/store/schema"
	"github.com/feral-file/ff-position-api/internal/testutil/ledgertest"
	"github.com/feral-file/ff-position-api/internal/testutil/pgtest"
	"github.com/feral-file/ff-position-api/internal/token"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	_ = logger.Initialize(logger.Config{Debug: true})

	db, teardown, err := pgtest.Setup(context.Background(), filepath.Join("..", "..", "db", "init_pg_db.sql"))
	if err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		teardown()
		os.Exit(1)
	}
	testDB = db

	code := m.Run()

	teardown()
	os.Exit(code)
}

var (
	tokenListAddress = address(0xff00)
	issuerAddress    = address(0xee00)
	accountAddress   = address(0xaa00)
)

func address(n int64) string {
	return common.BigToAddress(big.NewInt(n)).Hex()
}

func intPtr(v int) *int {
	return &v
}

// holding describes what an account holds in one token, mirrored to the index and the ledger
type holding struct {
	balance    int64
	pending    int64
	exchange   int64
	commitment int64
	locked     int64
	used       int64
	transfer   bool
}

// world is a listing snapshot with a consistent index and ledger
type world struct {
	t      *testing.T
	db     *gorm.DB
	store  store.Store
	ledger *ledgertest.Fake
	seq    int64
}

func newWorld(t *testing.T) *world {
	t.Helper()
	require.NotNil(t, testDB, "test database not initialized")

	tx := pgtest.Tx(t, testDB)
	return &world{
		t:      t,
		db:     tx,
		store:  store.NewPGStore(tx),
		ledger: ledgertest.New(),
	}
}

// list registers a token of a template in the listings, the metadata cache and the token list
func (w *world) list(template domain.Template) string {
	w.t.Helper()
	tokenAddress := w.listUnregistered(template)
	w.ledger.Register(tokenListAddress, tokenAddress, template.ContractTemplate(), issuerAddress)
	return tokenAddress
}

// listUnregistered lists a token without registering it on the token list
func (w *world) listUnregistered(template domain.Template) string {
	w.t.Helper()
	w.seq++
	tokenAddress := address(0x1000 + w.seq)

	_, err := w.store.CreateListing(context.Background(), store.CreateListingInput{
		TokenAddress: tokenAddress,
		IsPublic:     true,
		OwnerAddress: issuerAddress,
	})
	require.NoError(w.t, err)

	base := schema.TokenBase{
		TokenAddress:  tokenAddress,
		TokenTemplate: template.ContractTemplate(),
		OwnerAddress:  issuerAddress,
		Name:          fmt.Sprintf("%s %d", template, w.seq),
		Symbol:        fmt.Sprintf("T%d", w.seq),
		TotalSupply:   decimal.NewFromInt(1_000_000),
		Status:        true,
		Transferable:  true,
	}
	var row any
	switch template {
	case domain.TemplateBond:
		row = &schema.BondToken{TokenBase: base, FaceValue: decimal.NewFromInt(10000)}
	case domain.TemplateShare:
		row = &schema.ShareToken{TokenBase: base, IssuePrice: decimal.NewFromInt(1000)}
	case domain.TemplateMembership:
		row = &schema.MembershipToken{TokenBase: base, Details: "member"}
	case domain.TemplateCoupon:
		row = &schema.CouponToken{TokenBase: base, Details: "coupon"}
	}
	pgtest.Seed(w.t, w.db, row)

	return tokenAddress
}

// hold seeds a holding of the account in both the index and the ledger
func (w *world) hold(tokenAddress, account string, h holding) {
	w.t.Helper()
	now := time.Now()

	pgtest.Seed(w.t, w.db, &schema.Position{
		TokenAddress:       tokenAddress,
		AccountAddress:     account,
		Balance:            decimal.NewFromInt(h.balance),
		PendingTransfer:    decimal.NewFromInt(h.pending),
		ExchangeBalance:    decimal.NewFromInt(h.exchange),
		ExchangeCommitment: decimal.NewFromInt(h.commitment),
		Modified:           now,
	})
	if h.locked > 0 {
		pgtest.Seed(w.t, w.db, &schema.LockedPosition{
			TokenAddress:   tokenAddress,
			LockAddress:    issuerAddress,
			AccountAddress: account,
			Value:          decimal.NewFromInt(h.locked),
			Modified:       now,
		})
	}
	if h.used > 0 {
		pgtest.Seed(w.t, w.db, &schema.ConsumeCoupon{
			TransactionHash: fmt.Sprintf("0x%064x", w.seq),
			TokenAddress:    tokenAddress,
			AccountAddress:  account,
			Amount:          decimal.NewFromInt(h.used),
			BlockTimestamp:  now,
		})
	}
	if h.transfer {
		pgtest.Seed(w.t, w.db, &schema.Transfer{
			TransactionHash: fmt.Sprintf("0x%064x", w.seq+1),
			TokenAddress:    tokenAddress,
			FromAddress:     issuerAddress,
			ToAddress:       account,
			Value:           decimal.NewFromInt(1),
			BlockTimestamp:  now,
		})
	}

	w.ledger.SetBalance(tokenAddress, account, h.balance)
	w.ledger.SetPendingTransfer(tokenAddress, account, h.pending)
	w.ledger.SetUsed(tokenAddress, account, h.used)
	if h.exchange > 0 || h.commitment > 0 {
		exchangeAddress := address(0xe000)
		w.ledger.SetExchange(tokenAddress, exchangeAddress)
		w.ledger.SetExchangeBalances(exchangeAddress, account, tokenAddress, h.exchange, h.commitment)
	}
}

// engine builds an engine over the world with the given templates enabled, all when none are given
func (w *world) engine(templates ...domain.Template) *position.Engine {
	if len(templates) == 0 {
		templates = domain.Templates
	}
	resolver := registry.NewResolver(w.store, w.ledger, nil, registry.Config{
		TokenListAddress: tokenListAddress,
		Enabled:          templates,
	})
	return position.NewEngine(position.Config{
		EnabledTemplates: templates,
		MaxWorkers:       4,
	}, w.store, resolver, token.NewVariants(w.store, w.ledger))
}

// sources runs fn once per data source
func sources(t *testing.T, fn func(t *testing.T, enableIndex bool)) {
	for _, enableIndex := range []bool{true, false} {
		name := "live"
		if enableIndex {
			name = "indexed"
		}
		t.Run(name, func(t *testing.T) {
			fn(t, enableIndex)
		})
	}
}

// snapshot renders positions in a comparable form
func snapshot(positions []position.Position) []map[token.Field]string {
	result := make([]map[token.Field]string, 0, len(positions))
	for _, p := range positions {
		row := map[token.Field]string{"token_address": p.TokenAddress}
		for _, field := range []token.Field{
			token.FieldBalance,
			token.FieldPendingTransfer,
			token.FieldExchangeBalance,
			token.FieldExchangeCommitment,
			token.FieldLocked,
			token.FieldUsed,
		} {
			if value, ok := p.Values.Get(field); ok {
				row[field] = value.String()
			}
		}
		result = append(result, row)
	}
	return result
}

func tokenAddresses(positions []position.Position) []string {
	addresses := make([]string, 0, len(positions))
	for _, p := range positions {
		addresses = append(addresses, p.TokenAddress)
	}
	return addresses
}

func assertAmount(t *testing.T, expected int64, actual *decimal.Decimal) {
	t.Helper()
	if assert.NotNil(t, actual) {
		assert.True(t, decimal.NewFromInt(expected).Equal(*actual), "expected %d, got %s", expected, actual)
	}
}

func allZero(values token.Values) bool {
	for _, field := range []token.Field{
		token.FieldBalance,
		token.FieldPendingTransfer,
		token.FieldExchangeBalance,
		token.FieldExchangeCommitment,
		token.FieldLocked,
		token.FieldUsed,
	} {
		if value, ok := values.Get(field); ok && !value.IsZero() {
			return false
		}
	}
	return true
}
