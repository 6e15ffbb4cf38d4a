package hunt

// CollisionStrategy decides whether a ghost and Pac touch.
type CollisionStrategy func(g *Ghost, pac *Pac) bool

// SameTile reports a collision when both stand on the same tile.
func SameTile(g *Ghost, pac *Pac) bool {
	return g.Tile() == pac.Tile()
}

// SameOrSwappedTile also catches a ghost and Pac that passed through each
// other by exchanging tiles during the tick.
func SameOrSwappedTile(g *Ghost, pac *Pac) bool {
	if SameTile(g, pac) {
		return true
	}
	return g.Tile() == pac.PrevTile() && g.PrevTile() == pac.Tile() && g.Tile() != g.PrevTile()
}

// DemoSafety decides whether Pac survives a ghost collision in the demo level.
type DemoSafety func(level *LevelState) bool

// NeverSafe lets ghosts kill Pac in the demo level too.
func NeverSafe(*LevelState) bool { return false }

// AlwaysSafe makes Pac invulnerable in the demo level.
func AlwaysSafe(*LevelState) bool { return true }
