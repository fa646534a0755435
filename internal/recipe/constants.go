package recipe

// Attribute names on Fabricate, RequiredItem, RequiredSkill and Deconstruct nodes.
const (
	AttrSuitableFabricators = "suitablefabricators"
	AttrRequiredTime        = "requiredtime"
	AttrRequiredMoney       = "requiredmoney"
	AttrAmount              = "amount"
	AttrIdentifier          = "identifier"
	AttrLevel               = "level"
	AttrTime                = "time"
)

// Error format strings
const (
	ErrFmtWrongTag          = "%w: expected <%s> but was <%s>"
	ErrFmtMissingTime       = "%w: time on <%s>"
	ErrFmtRecipeAtIndex     = "fabricate[%d]: %w"
	ErrFmtRequiredItemEntry = "required item %q: %w"
	ErrFmtSkillEntry        = "required skill %q: %w"
	ErrFmtOutputEntry       = "output item %q: %w"
)
