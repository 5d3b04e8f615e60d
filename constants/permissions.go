package constants

// Desk permissions carried in JWT claims.
const (
	PermManagerFull   = "hotel-frontdesk.manager.full-permit"
	PermFrontDeskFull = "hotel-frontdesk.frontdesk.full-permit"
	PermKitchenFull   = "hotel-frontdesk.kitchen.full-permit"

	// Special permissions
	PermAny = "any"
)

// Permission groups for convenience
var (
	SettlementPermissions = []string{
		PermManagerFull,
		PermFrontDeskFull,
	}

	FoodOrderPermissions = []string{
		PermManagerFull,
		PermFrontDeskFull,
		PermKitchenFull,
	}
)
