package render

import (
	"github.com/vovakirdan/arcade-hunt/internal/core"
	"github.com/vovakirdan/arcade-hunt/internal/hunt"
	"github.com/vovakirdan/arcade-hunt/internal/world"
)

// Board glyphs.
const (
	GlyphWall      = '#'
	GlyphDoor      = '-'
	GlyphPellet    = '.'
	GlyphEnergizer = 'o'
	GlyphBonus     = '%'
	GlyphPac       = 'C'
	GlyphDeadPac   = 'X'
	GlyphGhost     = 'M'
	GlyphEyes      = '"'
)

var ghostColors = [hunt.NumGhosts]core.Color{
	hunt.Shadow:  core.ColorRed,
	hunt.Speedy:  core.ColorPink,
	hunt.Bashful: core.ColorCyan,
	hunt.Pokey:   core.ColorOrange,
}

// Board draws the maze, the food left, the bonus and all actors of a level.
// Ghosts are drawn over Pac so a collision shows the ghost.
func Board(level *hunt.LevelState, maze *world.Map) *core.Screen {
	s := core.NewScreen(maze.Width(), maze.Height())

	for y := range maze.Height() {
		for x := range maze.Width() {
			t := core.T(x, y)
			switch {
			case maze.IsWall(t):
				s.SetColored(x, y, GlyphWall, core.ColorBlue)
			case maze.IsDoor(t):
				s.SetColored(x, y, GlyphDoor, core.ColorPink)
			case maze.IsEnergizerTile(t) && maze.HasFoodAt(t):
				s.SetColored(x, y, GlyphEnergizer, core.ColorWhite)
			case maze.HasFoodAt(t):
				s.SetColored(x, y, GlyphPellet, core.ColorGray)
			}
		}
	}

	if b := level.Bonus; b != nil && b.IsEdible() {
		s.SetColored(b.Tile.X, b.Tile.Y, GlyphBonus, core.ColorRed)
	}

	pac := level.Pac
	if pac.Dead() {
		s.SetColored(pac.Tile().X, pac.Tile().Y, GlyphDeadPac, core.ColorYellow)
	} else {
		s.SetColored(pac.Tile().X, pac.Tile().Y, GlyphPac, core.ColorYellow)
	}

	for _, g := range level.Ghosts() {
		glyph, color := ghostLook(g, pac)
		s.SetColored(g.Tile().X, g.Tile().Y, glyph, color)
	}
	return s
}

func ghostLook(g *hunt.Ghost, pac *hunt.Pac) (rune, core.Color) {
	switch g.State() {
	case hunt.Frightened:
		if pac.LosingPower() && g.StateTicks()%20 < 10 {
			return GlyphGhost, core.ColorWhite
		}
		return GlyphGhost, core.ColorBrightBlue
	case hunt.Eaten, hunt.ReturningToHouse, hunt.EnteringHouse:
		return GlyphEyes, core.ColorWhite
	default:
		return GlyphGhost, ghostColors[g.Personality()]
	}
}
