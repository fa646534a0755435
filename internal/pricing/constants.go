package pricing

// Price node attribute names, lowercase as they appear in vanilla content.
const (
	AttrBasePrice           = "baseprice"
	AttrMinAvailable        = "minavailable"
	AttrMaxAvailable        = "maxavailable"
	AttrSold                = "sold"
	AttrCanBeSpecial        = "canbespecial"
	AttrMultiplier          = "multiplier"
	AttrBuyingPriceModifier = "buyingpricemodifier"
	AttrMinLevelDifficulty  = "minleveldifficulty"
	AttrRequiresUnlock      = "requiresunlock"
	AttrStoreIdentifier     = "storeidentifier"
	AttrRequiredFaction     = "requiredfaction"
	AttrFaction             = "faction"
	AttrMin                 = "min"
)

// Log messages
const (
	LogMsgClearIgnored      = "Price clear directive ignored, reset semantics are unconfirmed"
	LogMsgDuplicateMerchant = "Duplicate merchant listing, later one wins"
	LogMsgEmptyFaction      = "Reputation requirement without faction skipped"
)

// Error format strings
const (
	ErrFmtNotPrice         = "%w: expected <Price> but was <%s>"
	ErrFmtMissingBasePrice = "%w: baseprice on <%s>"
	ErrFmtMerchantListing  = "merchant %q: %w"
)
