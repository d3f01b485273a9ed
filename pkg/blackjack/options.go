package blackjack

// DefaultStartingBankroll is the bankroll a new session starts with
const DefaultStartingBankroll = 10000

// Options contains options for creating a new session
type Options struct {
	StartingBankroll int
	// ClearBetweenRounds asks the renderer to clear the screen before each new round
	ClearBetweenRounds bool
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		StartingBankroll:   DefaultStartingBankroll,
		ClearBetweenRounds: true,
	}
}
