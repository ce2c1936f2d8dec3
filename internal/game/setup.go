package game

import "fmt"

// WithExtraPlayer returns humans followed by the fixed extra player.
func WithExtraPlayer(humans []string, extra string) []string {
	names := make([]string, 0, len(humans)+1)
	names = append(names, humans...)
	return append(names, extra)
}

// CollectPlayers asks for player names until the prompter declines to add
// another, then appends extra. At least one human is always requested.
func CollectPlayers(setup SetupPrompter, extra string) ([]string, error) {
	var humans []string
	for {
		name, err := setup.RequestPlayerName()
		if err != nil {
			return nil, fmt.Errorf("requesting player name: %w", err)
		}
		humans = append(humans, name)

		more, err := setup.RequestAddAnotherPlayer()
		if err != nil {
			return nil, fmt.Errorf("requesting another player: %w", err)
		}
		if !more {
			break
		}
	}
	return WithExtraPlayer(humans, extra), nil
}
