package console

import "blackjack-terminal/pkg/blackjack"

// HitOrStick asks the player to hit or stick
func (c *Console) HitOrStick() (blackjack.Move, error) {
	choice, err := c.readChoice("Would you like to hit or stick? (H/S) ", 'h', 's')
	if err != nil {
		return 0, err
	}

	if choice == 'h' {
		return blackjack.MoveHit, nil
	}

	return blackjack.MoveStick, nil
}

// Raise asks the player whether they want to raise
func (c *Console) Raise() (bool, error) {
	return c.yesNo("Would you like to raise? (Y/N) ")
}

// PlayAgain asks the player whether they want another round
func (c *Console) PlayAgain() (bool, error) {
	return c.yesNo("Would you like to play again? (Y/N) ")
}

func (c *Console) yesNo(question string) (bool, error) {
	choice, err := c.readChoice(question, 'y', 'n')
	if err != nil {
		return false, err
	}

	return choice == 'y', nil
}
