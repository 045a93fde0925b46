package game

const (
	StartingHealth = 100
	LevelTileCount = 10
)
