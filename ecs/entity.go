package ecs

import (
	"strconv"

	"github.com/milk9111/goldminer/ecs/component"
)

var (
	ErrEntityNotAlive       = component.ErrEntityNotAlive
	ErrInvalidComponentKind = component.ErrInvalidComponentKind
)

// Entity identifies a game object. Ids start at 1 and are never handed out
// twice, so a stale Entity can never alias a newer one.
type Entity uint64

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

func (e Entity) Valid() bool {
	return e > 0
}
