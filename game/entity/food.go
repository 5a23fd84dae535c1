package entity

import "gridsnake/game/types"

// Food is the single live food item. Placement lives in manager.FoodManager.
type Food struct {
	Segment types.Segment
	Color   types.Color
}
