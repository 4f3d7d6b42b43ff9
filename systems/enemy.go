package systems

import (
	"github.com/automoto/quai/components"
	cfg "github.com/automoto/quai/config"
	"github.com/automoto/quai/shared/gamemath"
	"github.com/automoto/quai/systems/factory"
	"github.com/automoto/quai/tags"
	"github.com/yohamta/donburi"
)

func UpdateEnemies(w donburi.World) {
	arenaEntry, ok := components.Frame.First(w)
	if !ok {
		return
	}
	frame := components.Frame.Get(arenaEntry)
	arena := components.Arena.Get(arenaEntry)

	tags.Enemy.Each(w, func(e *donburi.Entry) {
		state := components.State.Get(e)
		// Corpses are handled by UpdateDeaths
		if state.CurrentState == cfg.StateDead {
			return
		}
		state.StateTimer += frame.Delta

		updateEnemyAI(e, frame, arena.Hysteresis)
	})
}

// NextState derives the behavior state of a living enemy from its distance
// to the player. hysteresis widens the ranges an enemy must leave before it
// falls back from Pursuing/Attacking; zero gives plain distance thresholds.
func NextState(current cfg.StateID, distance float64, t *cfg.EnemyTypeConfig, hysteresis float64) cfg.StateID {
	if current == cfg.StateDead {
		return cfg.StateDead
	}

	detectRange := t.DetectRange
	attackRange := t.AttackRange
	switch current {
	case cfg.StatePursuing:
		detectRange += hysteresis
	case cfg.StateAttacking:
		detectRange += hysteresis
		attackRange += hysteresis
	}

	switch {
	case distance >= detectRange:
		return cfg.StateDormant
	case distance <= attackRange:
		return cfg.StateAttacking
	default:
		return cfg.StatePursuing
	}
}

func updateEnemyAI(e *donburi.Entry, frame *components.FrameData, hysteresis float64) {
	enemy := components.Enemy.Get(e)
	transform := components.Transform.Get(e)
	state := components.State.Get(e)

	distanceToPlayer := gamemath.Distance(transform.Position, frame.Player)
	state.Transition(NextState(state.CurrentState, distanceToPlayer, enemy.TypeConfig, hysteresis))

	switch state.CurrentState {
	case cfg.StateDormant:
		// Out of detection range: no facing, movement or attack
		return
	case cfg.StatePursuing:
		facePlayer(transform, frame)
		next := gamemath.Seek(transform.Position, frame.Player, enemy.TypeConfig.Speed*frame.Delta)
		// Hit-zones only register inside the collision space
		transform.Position = factory.ClampToArena(next)
	case cfg.StateAttacking:
		facePlayer(transform, frame)
		handleAttack(enemy, frame)
	}
}

// facePlayer turns the enemy toward the player instantly, yaw only.
func facePlayer(transform *components.TransformData, frame *components.FrameData) {
	if yaw, ok := gamemath.FlatYaw(transform.Position, frame.Player); ok {
		transform.Yaw = yaw
	}
}

func handleAttack(enemy *components.EnemyData, frame *components.FrameData) {
	if enemy.HasAttacked && frame.NowMs-enemy.LastAttackMs <= enemy.TypeConfig.AttackIntervalMs {
		return
	}

	if frame.OnPlayerHit != nil {
		frame.OnPlayerHit(enemy.TypeConfig.Damage)
	}
	enemy.LastAttackMs = frame.NowMs
	enemy.HasAttacked = true
}
