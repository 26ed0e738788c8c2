package domain

const (
	// Ledger constants
	ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// Registry template names as stored by the token list contract
	CONTRACT_TEMPLATE_BOND       = "IbetStraightBond"
	CONTRACT_TEMPLATE_SHARE      = "IbetShare"
	CONTRACT_TEMPLATE_MEMBERSHIP = "IbetMembership"
	CONTRACT_TEMPLATE_COUPON     = "IbetCoupon"
)
