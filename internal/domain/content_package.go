package domain

// ContentPackage is a game content package definition: a name, the game version it targets
// and the files it contributes, grouped by record kind.
type ContentPackage struct {
	Name        string   `json:"name" validate:"required"`
	Version     string   `json:"version" validate:"required,gameversion"` // dash separated, e.g. 1-2-8-0
	Items       []string `json:"items"`
	Submarines  []string `json:"submarines"`
	Characters  []string `json:"characters"`
	Afflictions []string `json:"afflictions"`
	Structures  []string `json:"structures"`
	NPCSets     []string `json:"npcSets"`
}
