package blackjack

// Blackjack is the best possible total
const Blackjack = 21

// DealerStandsOn is the lowest total the dealer will stick on
const DealerStandsOn = 18

// PlayerState is where the player's turn is at
type PlayerState string

// PlayerState constants
const (
	// PlayerStatePlaying means the player can still hit or stick
	PlayerStatePlaying PlayerState = "playing"

	// PlayerStateStuck means the player stopped drawing and the dealer plays next
	PlayerStateStuck PlayerState = "stuck"

	// PlayerStateBust means the player went over 21
	PlayerStateBust PlayerState = "bust"

	// PlayerStateTwentyOne means the player reached exactly 21
	PlayerStateTwentyOne PlayerState = "twenty-one"
)

// IsTerminal returns true if the player's turn is over
func (p PlayerState) IsTerminal() bool {
	return p != PlayerStatePlaying
}

// DecidesRound returns true if the round is decided without the dealer playing
func (p PlayerState) DecidesRound() bool {
	return p == PlayerStateBust || p == PlayerStateTwentyOne
}

// DealerState is where the dealer's turn is at
type DealerState string

// DealerState constants
const (
	// DealerStateWaiting means the dealer has not played (or did not need to)
	DealerStateWaiting DealerState = "waiting"

	// DealerStateHitting means the dealer is under the threshold and draws another card
	DealerStateHitting DealerState = "hitting"

	// DealerStateSticking means the dealer is between the threshold and 20
	DealerStateSticking DealerState = "sticking"

	// DealerStateTwentyOne means the dealer reached exactly 21
	DealerStateTwentyOne DealerState = "twenty-one"

	// DealerStateBust means the dealer went over 21
	DealerStateBust DealerState = "bust"
)

// IsTerminal returns true if the dealer is done drawing
func (d DealerState) IsTerminal() bool {
	return d == DealerStateSticking || d == DealerStateTwentyOne || d == DealerStateBust
}

// Move is a decision the player makes on their turn
type Move int

// Move constants
const (
	MoveHit Move = iota + 1
	MoveStick
)

func (m Move) String() string {
	switch m {
	case MoveHit:
		return "hit"
	case MoveStick:
		return "stick"
	}

	return "unknown"
}
