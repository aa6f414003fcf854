package event

var typeToName = map[EventType]string{
	EventSpawnFood: "SpawnFood",
	EventGrowth:    "Growth",
	EventGameReset: "GameReset",
	EventGamePause: "GamePause",
}

// String returns the name of the event type for logging
func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "Unknown"
}
