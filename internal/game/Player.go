package game

type Player struct {
	Health int
}

func CreateNewPlayer() *Player {
	return &Player{
		Health: StartingHealth,
	}
}

// CheckInvariants reports whether the player still holds its mandated
// starting state.
func (p *Player) CheckInvariants() error {
	if p.Health != StartingHealth {
		return newInvariantViolation("player health", p.Health, StartingHealth)
	}
	return nil
}
