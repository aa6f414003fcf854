package component

// FoodComponent marks a consumable food entity
type FoodComponent struct{}
