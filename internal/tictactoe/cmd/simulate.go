// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/tictactoe/pkg/board"
	"laptudirm.com/x/tictactoe/pkg/game"
	"laptudirm.com/x/tictactoe/pkg/player"
)

// tictactoe simulate
func Simulate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play machine against machine games and tally the results",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`simulate plays the given number of games in which both
			configured players are replaced by machines with their names,
			symbols and strategies, and prints how often each of them
			started, won and lost, and which lines decided the games.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := cmd.Flags().GetInt("games")
			if err != nil {
				return err
			}

			if games <= 0 {
				return fmt.Errorf("simulate: invalid number of games %d", games)
			}

			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			rng, err := newRand(cmd)
			if err != nil {
				return err
			}

			var players [2]player.Player
			var names [2]string
			for seat, p := range conf.Players[:2] {
				players[seat] = player.NewMachine(p.Name, board.Symbol(p.Symbol), p.Strategy, player.WithRand(rng))
				names[seat] = p.Name
			}

			s := spinner.New(spinner.CharSets[spin], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
			s.Start() // Start the ~working~ spinner.

			tally := game.NewTally(names)
			for i := 0; i < games; i++ {
				match := game.New(players[0], players[1],
					game.WithOutput(io.Discard),
					game.WithRand(rng),
				)

				outcome, err := match.Play()
				if err != nil {
					s.Stop()
					return fmt.Errorf("simulate: game %d: %w", i+1, err)
				}

				logrus.Tracef("game %d: %s %s", i+1, outcome.Score(), outcome)
				tally.Add(outcome, match.First())
			}

			s.Stop() // Stop the ~working~ spinner.

			tally.Print(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().IntP("games", "n", 1000, "Number of games to play")

	return cmd
}

// spin is the spinner.CharSets index shown while games are simulated.
const spin = 14
