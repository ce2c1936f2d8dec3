// Package game implements the turn and game state machines of Yatzy.
//
// A Game owns one Ledger per player in fixed turn order. Each turn is a
// Turn state machine: up to three throws of the unheld dice, then a
// category choice that is scored with the rules in package scoring and
// recorded on the player's ledger. The game ends when a player with a full
// score sheet comes up; the highest total wins and ties go to the player
// earliest in turn order.
//
// # Basic Usage
//
//	roller := dice.NewRoller(randutil.New(seed))
//	g, err := game.New(roller, game.WithExtraPlayer([]string{"Alice"}, game.DefaultExtraPlayer))
//	if err != nil {
//	    return err
//	}
//	result, err := g.Play(ctx, prompter, reporter)
//
// # Boundaries
//
// All input arrives through a Prompter and all output leaves through a
// Reporter. Adapters such as the console and the TUI parse and validate
// typed input and re-prompt on mistakes; the game only ever sees dice
// positions and categories.
//
// # Deterministic Testing
//
// Inject a scripted roller to control every throw:
//
//	roller := dice.NewRoller(dice.NewFaces(6, 6, 6, 6, 6))
package game
