package core

import "fmt"

// playersWithScores builds index-ordered players holding the given scores.
func playersWithScores(scores ...int) []PlayerView {
	players := make([]PlayerView, len(scores))
	for i, s := range scores {
		players[i] = PlayerView{
			Index:     i,
			Name:      fmt.Sprintf("player_%d", i),
			Score:     s,
			Resources: Resources{10, 10, 10},
		}
	}
	return players
}

// auctionSnapshot is a mid-auction snapshot.
func auctionSnapshot(phase, round int, players []PlayerView) Snapshot {
	return Snapshot{
		Phase:         phase,
		Round:         round,
		Turn:          0,
		ActiveAuction: &Auction{MaxPlayer: -1},
		Players:       players,
	}
}

// phaseStart is the first snapshot of a phase.
func phaseStart(phase int, players []PlayerView) Snapshot {
	s := auctionSnapshot(phase, 1, players)
	s.IsPhaseStart = true
	return s
}

// gameOver is the terminal snapshot.
func gameOver(phase int, players []PlayerView) Snapshot {
	return Snapshot{
		Phase:      phase,
		Round:      1,
		Turn:       -1,
		IsGameOver: true,
		Players:    players,
	}
}
