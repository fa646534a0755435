package catalog

import (
	"fmt"

	"github.com/osse101/BaroCatalog_Go/internal/domain"
)

// Record attribute names read by the item resolver.
const (
	AttrIdentifier            = "identifier"
	AttrName                  = "name"
	AttrNameIdentifier        = "nameidentifier"
	AttrDescriptionIdentifier = "descriptionidentifier"
	AttrCategory              = "category"
	AttrTags                  = "tags"
	AttrVariantOf             = "variantof"
	AttrInventoryIconColor    = "inventoryiconcolor"
	AttrSpriteColor           = "spritecolor"
	AttrTooltipValueMin       = "tooltipvaluemin"
	AttrTooltipValueMax       = "tooltipvaluemax"
)

// Text table key prefixes
const (
	TextPrefixName        = "entityname."
	TextPrefixDescription = "entitydescription."
)

// Generic material placeholders
const (
	PlaceholderType  = "[type]"
	PlaceholderValue = "[value]"
)

// Log messages
const (
	LogMsgRecordSkipped       = "Record skipped"
	LogMsgSubtreeDowngraded   = "Optional sub-tree dropped"
	LogMsgAncestorNotFound    = "Variant ancestor not found, resolving without it"
	LogMsgVariantChain        = "Multi-level variant chain, only the direct ancestor is used"
	LogMsgDuplicateIdentifier = "Duplicate identifier, later record wins"
	LogMsgBatchResolved       = "Batch resolved"
)

// Error messages
const (
	ErrMsgNoRecord    = "no record"
	ErrMsgNoDirectory = "no origin directory"
	ErrMsgNoSprite    = "no sprite"
)

var (
	// ErrNoDirectory is returned for records that were not assigned an origin directory by the loader.
	ErrNoDirectory = fmt.Errorf("%w: %s", domain.ErrUnresolvableRecord, ErrMsgNoDirectory)

	// ErrNoSprite is returned for records with no Sprite, own or inherited.
	ErrNoSprite = fmt.Errorf("%w: %s", domain.ErrUnresolvableRecord, ErrMsgNoSprite)
)
