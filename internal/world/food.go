package world

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/arcade-hunt/internal/core"
)

// RestoreFood puts every pellet and energizer of the layout back in place.
func (m *Map) RestoreFood() {
	m.food = intmap.New[int32, Food](len(m.initialFood))
	for _, f := range m.initialFood {
		m.food.Put(f.index, f.kind)
	}
}

// HasFoodAt reports whether the tile still holds a pellet or an energizer.
func (m *Map) HasFoodAt(t core.Tile) bool {
	if !m.Contains(t) {
		return false
	}
	return m.food.Has(int32(m.index(t)))
}

// FoodAt returns the food lying on the tile.
func (m *Map) FoodAt(t core.Tile) Food {
	if !m.Contains(t) {
		return FoodNone
	}
	kind, ok := m.food.Get(int32(m.index(t)))
	if !ok {
		return FoodNone
	}
	return kind
}

// IsEnergizerTile reports whether the layout placed an energizer on the tile,
// eaten or not.
func (m *Map) IsEnergizerTile(t core.Tile) bool {
	for _, e := range m.energizers {
		if e == t {
			return true
		}
	}
	return false
}

// EnergizerTiles returns the energizer positions of the layout.
func (m *Map) EnergizerTiles() []core.Tile {
	out := make([]core.Tile, len(m.energizers))
	copy(out, m.energizers)
	return out
}

// RegisterFoodEaten removes the food from the tile. Eating an empty tile is a
// bookkeeping mistake of the caller: it is logged and ignored.
func (m *Map) RegisterFoodEaten(t core.Tile) {
	if !m.HasFoodAt(t) {
		m.logger.Warn("food already eaten", "tile", t)
		return
	}
	m.food.Del(int32(m.index(t)))
}

// UneatenFoodCount returns how much food is left.
func (m *Map) UneatenFoodCount() int {
	return m.food.Len()
}

// TotalFoodCount returns how much food the layout holds when full.
func (m *Map) TotalFoodCount() int {
	return len(m.initialFood)
}

// FoodTiles returns the tiles that still hold food in row-major order.
func (m *Map) FoodTiles() []core.Tile {
	var out []core.Tile
	for _, f := range m.initialFood {
		if m.food.Has(f.index) {
			out = append(out, m.tileAt(int(f.index)))
		}
	}
	return out
}
