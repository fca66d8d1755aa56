package entity

// Player identifies one of the two seats at the board.
type Player int

const (
	PlayerNone Player = iota
	PlayerFirst
	PlayerSecond
)

// Other returns the opponent of the player.
func (that Player) Other() Player {
	switch that {
	case PlayerFirst:
		return PlayerSecond
	case PlayerSecond:
		return PlayerFirst
	default:
		return PlayerNone
	}
}

func (that Player) String() string {
	switch that {
	case PlayerFirst:
		return "first"
	case PlayerSecond:
		return "second"
	default:
		return "none"
	}
}

// Marks binds each player to the symbol drawn for it. The binding is fixed for a game.
type Marks struct {
	First  string
	Second string
}

func (that Marks) Symbol(player Player) string {
	switch player {
	case PlayerFirst:
		return that.First
	case PlayerSecond:
		return that.Second
	default:
		return ""
	}
}
