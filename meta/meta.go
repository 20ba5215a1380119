// meta/meta.go
package meta

import "time"

// DICE_DELAY is the pause before a rolled value is reported, used to pace the dice animation.
const DICE_DELAY = 480 * time.Millisecond

// RELEASE_ATTEMPTS is how many rolls a player without tokens in play gets per turn.
const RELEASE_ATTEMPTS = 3

// RELEASE_PIP is the die value that releases a token under the pip release policy.
const RELEASE_PIP = 5

// MAX_ACTIONS caps the rolls and moves of one simulated game.
const MAX_ACTIONS = 100000

// GAMES defines the number of simulated games run by default.
const GAMES = 10

// UPDATE_BUFFER defines the capacity of a session's update channel.
const UPDATE_BUFFER = 64
