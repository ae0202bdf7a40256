package system

import (
	"io"
	"log/slog"

	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/gamelog"
	"dungeon-kernel/internal/gamemap"
)

// FOVFunc returns the tiles visible from center within radius on m.
type FOVFunc func(center gamemap.Point, radius int, m *gamemap.GameMap) []gamemap.Point

// Resources is the shared state every system reads and writes.
// Systems run one at a time, so nothing here is locked.
type Resources struct {
	World  *ecs.World
	Map    *gamemap.GameMap
	Player ecs.EntityID
	Log    *gamelog.Log
	FOV    FOVFunc
	Logger *slog.Logger

	// MonstersAct is true only for the monster half of a turn.
	MonstersAct bool
}

// IsPlayer reports whether id is the player-controlled entity.
func (r *Resources) IsPlayer(id ecs.EntityID) bool {
	return id != ecs.NilEntity && id == r.Player
}

func (r *Resources) fov() FOVFunc {
	if r.FOV != nil {
		return r.FOV
	}
	return FieldOfView
}

func (r *Resources) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// playerLog appends to the game log only when actor is the player.
func (r *Resources) playerLog(actor ecs.EntityID, format string, args ...any) {
	if r.Log == nil || !r.IsPlayer(actor) {
		return
	}
	r.Log.Addf(format, args...)
}
