// Package registry maps the policy names used in variant configuration to
// the collision strategies and demo-safety predicates of the hunting engine.
// Policies register themselves in init(), so configuration can name them
// without the config package knowing the engine.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/arcade-hunt/internal/hunt"
)

// Built-in policy names.
const (
	CollisionSameTile       = "same_tile"
	CollisionSameOrSwapped  = "same_or_swapped_tile"
	DemoSafetyNever         = "never"
	DemoSafetyAlways        = "always"
	DefaultCollisionPolicy  = CollisionSameTile
	DefaultDemoSafetyPolicy = DemoSafetyNever
)

var (
	collisions = make(map[string]hunt.CollisionStrategy)
	demoSafety = make(map[string]hunt.DemoSafety)
	mu         sync.RWMutex
)

func init() {
	RegisterCollision(CollisionSameTile, hunt.SameTile)
	RegisterCollision(CollisionSameOrSwapped, hunt.SameOrSwappedTile)
	RegisterDemoSafety(DemoSafetyNever, hunt.NeverSafe)
	RegisterDemoSafety(DemoSafetyAlways, hunt.AlwaysSafe)
}

// RegisterCollision adds a collision strategy under a name.
// Panics if the name is already taken.
func RegisterCollision(name string, s hunt.CollisionStrategy) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := collisions[name]; exists {
		panic(fmt.Sprintf("registry: collision policy %q already registered", name))
	}
	collisions[name] = s
}

// RegisterDemoSafety adds a demo-safety predicate under a name.
// Panics if the name is already taken.
func RegisterDemoSafety(name string, s hunt.DemoSafety) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := demoSafety[name]; exists {
		panic(fmt.Sprintf("registry: demo safety policy %q already registered", name))
	}
	demoSafety[name] = s
}

// Collision returns the collision strategy registered under name.
// An empty name selects the default.
func Collision(name string) (hunt.CollisionStrategy, error) {
	if name == "" {
		name = DefaultCollisionPolicy
	}
	mu.RLock()
	defer mu.RUnlock()

	s, ok := collisions[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown collision policy %q", name)
	}
	return s, nil
}

// DemoSafety returns the demo-safety predicate registered under name.
// An empty name selects the default.
func DemoSafety(name string) (hunt.DemoSafety, error) {
	if name == "" {
		name = DefaultDemoSafetyPolicy
	}
	mu.RLock()
	defer mu.RUnlock()

	s, ok := demoSafety[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown demo safety policy %q", name)
	}
	return s, nil
}

// CollisionNames returns the registered collision policies, sorted.
func CollisionNames() []string {
	mu.RLock()
	defer mu.RUnlock()
	return sortedKeys(collisions)
}

// DemoSafetyNames returns the registered demo-safety policies, sorted.
func DemoSafetyNames() []string {
	mu.RLock()
	defer mu.RUnlock()
	return sortedKeys(demoSafety)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
