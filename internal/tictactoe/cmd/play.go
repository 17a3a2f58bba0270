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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/tictactoe/pkg/game"
	"laptudirm.com/x/tictactoe/pkg/player"
)

// tictactoe play
func Play() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a single game",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play plays a single game between the configured players,
			choosing at random who moves first.

			Human players are asked for the row and then the column of
			their move, both numbered from 1 to 3. A move on a taken
			cell or an answer which is not a number is asked again.`),
		RunE: runPlay,
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	rng, err := newRand(cmd)
	if err != nil {
		return err
	}

	players := conf.Build(cmd.InOrStdin(), cmd.OutOrStdout(), player.WithRand(rng))

	match := game.New(players[0], players[1],
		game.WithOutput(cmd.OutOrStdout()),
		game.WithRand(rng),
	)

	outcome, err := match.Play()
	if err != nil {
		return err
	}

	logrus.WithField("score", outcome.Score()).Debug(outcome)
	return nil
}
