package game

type Tile struct {
	Index int
}

func CreateNewTile(index int) *Tile {
	return &Tile{
		Index: index,
	}
}

type Level struct {
	Tiles []*Tile
}

func CreateNewLevel() *Level {
	tiles := make([]*Tile, LevelTileCount)
	for i := range tiles {
		tiles[i] = CreateNewTile(i)
	}

	return &Level{
		Tiles: tiles,
	}
}

func (l *Level) TileCount() int {
	return len(l.Tiles)
}

// CheckInvariants reports whether the level still holds its mandated
// starting state.
func (l *Level) CheckInvariants() error {
	if l.TileCount() != LevelTileCount {
		return newInvariantViolation("level tile count", l.TileCount(), LevelTileCount)
	}
	return nil
}
