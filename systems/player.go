package systems

import (
	"github.com/automoto/starhop/components"
	cfg "github.com/automoto/starhop/config"
	"github.com/automoto/starhop/systems/factory"
	"github.com/automoto/starhop/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MovePlayer moves the player one cell in dir. Moves off the board are blocked.
func MovePlayer(ecs *ecs.ECS, dir cfg.Direction) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	*player = step(*player, dir)
	syncPlayer(entry)
}

// step returns the cell one move away from p, clamped to the board
func step(p components.PlayerData, dir cfg.Direction) components.PlayerData {
	switch dir {
	case cfg.DirRight:
		if p.Col < cfg.Board.Columns-1 {
			p.Col++
		}
	case cfg.DirLeft:
		if p.Col > 0 {
			p.Col--
		}
	case cfg.DirDown:
		if p.Row < cfg.Board.Rows-1 {
			p.Row++
		}
	case cfg.DirUp:
		if p.Row > 0 {
			p.Row--
		}
	}
	return p
}

// ResetPlayer puts the player back on the start cell, clears every enemy and
// deals a fresh set of stars.
func ResetPlayer(ecs *ecs.ECS) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		entry = factory.CreatePlayer(ecs)
	}
	player := components.Player.Get(entry)
	player.Col = cfg.Player.StartCol
	player.Row = cfg.Player.StartRow
	syncPlayer(entry)

	clearEnemies(ecs)
	clearStars(ecs)
	if round := GetRound(ecs); round != nil {
		factory.SpawnStars(ecs, round)
	}
}

// PlayerPosition returns the player's pixel position
func PlayerPosition(ecs *ecs.ECS) (x, y float64, ok bool) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return 0, 0, false
	}
	pos := components.Position.Get(entry)
	return pos.X, pos.Y, true
}

// syncPlayer copies the grid cell into the drawn position and collision object
func syncPlayer(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	pos := components.Position.Get(entry)
	pos.X = cfg.PlayerX(player.Col)
	pos.Y = cfg.PlayerY(player.Row)

	obj := components.Object.Get(entry)
	obj.X, obj.Y = factory.SpacePoint(pos.X, pos.Y)
	obj.Update()

	log.Debug("player moved", "col", player.Col, "row", player.Row, "x", pos.X, "y", pos.Y)
}

// onWinRow reports whether the player stands on the water row
func onWinRow(ecs *ecs.ECS) bool {
	_, y, ok := PlayerPosition(ecs)
	if !ok {
		return false
	}
	if cfg.Player.WinAtOrAbove {
		return y <= cfg.WinY()
	}
	return y == cfg.WinY()
}
