package domain

// Record tags and attribute names used by the resolvers.
const (
	TagItem          = "Item"
	TagItems         = "Items"
	TagPrice         = "Price"
	TagReputation    = "Reputation"
	TagClear         = "Clear"
	TagFabricate     = "Fabricate"
	TagRequiredItem  = "RequiredItem"
	TagRequiredSkill = "RequiredSkill"
	TagDeconstruct   = "Deconstruct"
	TagInventoryIcon = "InventoryIcon"
	TagSprite        = "Sprite"
	TagGeneticMat    = "GeneticMaterial"
)

// Catalog-wide constants.
const (
	// DefaultCategory is used when neither the record nor its ancestor names a category.
	DefaultCategory = "None"

	// DefaultMerchant is the key under which an item's baseline listing is exported.
	DefaultMerchant = "default"

	// MerchantPrefix is stripped from store identifiers ("merchantcity" -> "city").
	MerchantPrefix = "merchant"

	// DefaultFabricator is the facility assumed when a recipe names none.
	DefaultFabricator = "fabricator"

	// VendingMachine dispenses items; its Fabricate entries are not player recipes.
	VendingMachine = "vendingmachine"

	// DefaultFabricationTime is the recipe time in seconds used when none is given.
	// TODO: confirm against live data, the game default has not been verified.
	DefaultFabricationTime = 15.0

	// RequiredFactionReputation is the minimum reputation implied by a requiredfaction attribute.
	RequiredFactionReputation = 20

	// SellPriceRatio is the share of the merchant price paid when selling to a merchant.
	SellPriceRatio = 0.3

	// ContentRoot prefixes texture paths that are already rooted at the game directory.
	ContentRoot = "Content/"
)
