package core

import "sort"

// PlayerRank is one row of the standings.
type PlayerRank struct {
	PlayerIndex int
	Name        string
	Rank        int // 1-based; fully tied players share a rank
	Score       int
	CoinTotal   int
}

// RankPlayers orders players by score, then by total coins held, both descending.
//
// Players equal on both keys share a rank and the next distinct player skips ahead
// (1, 2, 2, 4). Fully tied players keep their index order. The returned slice is in
// standings order; use RanksByIndex to look ranks up by player.
func RankPlayers(players []PlayerView) []PlayerRank {
	if len(players) == 0 {
		return []PlayerRank{}
	}

	entries := make([]PlayerRank, len(players))
	for i, p := range players {
		entries[i] = PlayerRank{
			PlayerIndex: p.Index,
			Name:        p.Name,
			Score:       p.Score,
			CoinTotal:   p.Resources.Sum(),
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		if entries[i].CoinTotal != entries[j].CoinTotal {
			return entries[i].CoinTotal > entries[j].CoinTotal
		}
		return entries[i].PlayerIndex < entries[j].PlayerIndex
	})

	// Walk tie groups: a new rank starts wherever either key changes
	rank := 1
	entries[0].Rank = rank
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		if cur.Score != prev.Score || cur.CoinTotal != prev.CoinTotal {
			rank = i + 1
		}
		entries[i].Rank = rank
	}

	return entries
}

// RanksByIndex maps player index to rank.
func RanksByIndex(ranking []PlayerRank) map[int]int {
	ranks := make(map[int]int, len(ranking))
	for _, r := range ranking {
		ranks[r.PlayerIndex] = r.Rank
	}
	return ranks
}

// FinalStandings ranks the players of the terminal snapshot.
// It returns nil when the snapshot is nil or the game is not over yet.
func FinalStandings(final *Snapshot) []PlayerRank {
	if final == nil || !final.IsGameOver {
		return nil
	}
	return RankPlayers(final.Players)
}
