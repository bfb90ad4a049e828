package game

import "art-auction/internal/catalog"

// Score is the player's final score: the better of the artist and
// movement bonuses. Max, not sum — a piece counts toward both
// groupings but only the stronger specialization pays out.
func (p *Player) Score() int {
	artist := p.artistBonus()
	movement := p.movementBonus()
	if artist > movement {
		return artist
	}
	return movement
}

// artistBonus groups the collection by artist and sums
// (total stars in group) x (pieces in group) across groups.
func (p *Player) artistBonus() int {
	groups := map[catalog.Artist][]int{}
	for _, piece := range p.Collection {
		groups[piece.Artist] = append(groups[piece.Artist], piece.Stars)
	}
	return groupBonus(groups)
}

// movementBonus is the same computation grouped by movement.
func (p *Player) movementBonus() int {
	groups := map[catalog.Movement][]int{}
	for _, piece := range p.Collection {
		groups[piece.Movement] = append(groups[piece.Movement], piece.Stars)
	}
	return groupBonus(groups)
}

func groupBonus[K comparable](groups map[K][]int) int {
	total := 0
	for _, stars := range groups {
		sum := 0
		for _, s := range stars {
			sum += s
		}
		total += sum * len(stars)
	}
	return total
}
