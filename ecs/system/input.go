package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/goldminer/ecs"
	"github.com/milk9111/goldminer/ecs/component"
)

// InputSystem latches each player's fire key into PlayerInput. Players whose
// timer ran out stop receiving input.
type InputSystem struct {
	keys        []ebiten.Key
	justPressed func(ebiten.Key) bool
}

func NewInputSystem(keys []ebiten.Key) *InputSystem {
	return &InputSystem{keys: keys, justPressed: inpututil.IsKeyJustPressed}
}

// ParseKey maps a key name such as "Space" or "Enter" to an ebiten key.
func ParseKey(name string) (ebiten.Key, bool) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, false
	}
	return k, true
}

func (s *InputSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for _, e := range w.Query(component.PlayerInputComponent, component.OwnerComponent) {
		p := ecs.Get(w, e, component.OwnerComponent).Player
		if p < 0 || p >= len(s.keys) || timerExpired(w, p) {
			continue
		}
		if s.justPressed(s.keys[p]) {
			ecs.Get(w, e, component.PlayerInputComponent).Fire = true
		}
	}
}
