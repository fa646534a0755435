package domain

// Recipe is one way of fabricating an item.
type Recipe struct {
	Required      map[string]int `json:"required"` // item id -> amount
	Output        int            `json:"output"`
	Machine       string         `json:"machine"`
	Time          float64        `json:"time"` // seconds
	Skills        map[string]int `json:"skills"` // skill id -> level
	RequiredMoney int            `json:"requiredMoney"`
}

// Deconstructable describes what an item breaks down into.
type Deconstructable struct {
	Output map[string]int `json:"output"` // item id -> amount
	Time   float64        `json:"time"`   // seconds
}
