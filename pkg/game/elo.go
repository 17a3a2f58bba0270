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


package game

import "math"

// Elo estimates the rating difference of a player who scored the given
// number of wins, draws, and losses against its opponent. It returns the
// estimate mu together with the bounds of its 95% confidence interval.
func Elo(wins, draws, losses int) (lower float64, mu float64, upper float64) {
	n := float64(wins + draws + losses)
	if n == 0 {
		return 0, 0, 0
	}

	w := float64(wins) / n
	d := float64(draws) / n
	l := float64(losses) / n

	score := w + d/2
	sigma := math.Sqrt(w*math.Pow(1-score, 2)+d*math.Pow(0.5-score, 2)+l*math.Pow(score, 2)) / math.Sqrt(n)

	return scoreToElo(score + phiInv(0.025)*sigma),
		scoreToElo(score),
		scoreToElo(score + phiInv(0.975)*sigma)
}

// scoreToElo converts an expected score into a rating difference. Scores
// of 0 or less and 1 or more have no finite difference and report -Inf
// and +Inf.
func scoreToElo(score float64) float64 {
	switch {
	case score <= 0:
		return math.Inf(-1)
	case score >= 1:
		return math.Inf(+1)
	}

	return -400 * math.Log10(1/score-1)
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
