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
	"math/rand/v2"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/tictactoe/pkg/config"
)

// Version is reported by --version.
var Version = "v0.1.0"

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe in the terminal",
		Long: heredoc.Doc(`tictactoe plays a game of tic-tac-toe on a 3x3 board between
			the two players in its configuration, by default the machine
			Sapo (X) against the human Perereca (O).

			Running tictactoe without a command is the same as running
			tictactoe play.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},

		RunE: runPlay,
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show tictactoe's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().StringP("config", "c", "", "Configuration file (default "+config.File+")")
	root.PersistentFlags().Uint64("seed", 0, "Seed for the random choices, 0 picks one")

	root.SetVersionTemplate(Version + "\n")
	root.Version = Version

	// Register the various commands.
	root.AddCommand(Play())
	root.AddCommand(Simulate())
	root.AddCommand(Config())

	return root
}

// loadConfig loads the configuration selected by --config and applies
// its logging level, unless --trace overrides it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	conf, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if !cmd.Flag("trace").Changed {
		logrus.SetLevel(conf.Level())
	}

	return conf, nil
}

// newRand creates the random source selected by --seed.
func newRand(cmd *cobra.Command) (*rand.Rand, error) {
	seed, err := cmd.Flags().GetUint64("seed")
	if err != nil {
		return nil, err
	}

	if seed == 0 {
		seed = rand.Uint64()
	}

	logrus.Debugf("random seed: %d", seed)
	return rand.New(rand.NewPCG(seed, seed)), nil
}
