// Package game implements the rules of a single-seat blackjack table.
//
// An Engine plays one round at a time between a player Agent and a dealer
// Agent, dealing from a Shoe. A Session runs consecutive rounds on an engine
// and accumulates the player's score.
//
// # Basic Usage
//
//	shoe := deck.New(randutil.New(42), 1)
//	engine := game.NewEngine(shoe, player, dealer)
//	session := game.NewSession(engine, logger)
//	score, err := session.Play(ctx, 100, false)
//
// # Deterministic Testing
//
// Stack the shoe so the deal is known in advance. Cards are dealt dealer,
// player, dealer, player, then drawn in order by hits:
//
//	shoe := deck.NewStacked(rng, deck.MustParseCards("9sTh7dAc")...)
//
// # Scoring
//
// Each player hand is compared with the dealer's by distance from 21. A
// win scores 1, a winning natural 1.5, a loss -1, a tie 0 and a surrender
// -0.5. A double down multiplies the hand's score by two.
//
// Agents only ever see GameState snapshots and must answer with one of the
// legal actions they were offered; anything else ends the round with an
// *InvalidActionError.
package game
