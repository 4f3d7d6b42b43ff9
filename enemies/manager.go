// Package enemies owns the hostile actors of an arena: it spawns them, runs
// their perception, movement and attack loop once per frame, and keeps their
// renderables and hit-zones in step with the simulation.
//
// A Manager is driven by a single host loop and is not safe for concurrent
// use.
package enemies

import (
	"log"
	"sort"

	"github.com/automoto/quai/components"
	cfg "github.com/automoto/quai/config"
	"github.com/automoto/quai/shared/gamemath"
	"github.com/automoto/quai/systems"
	"github.com/automoto/quai/systems/factory"
	"github.com/automoto/quai/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type EnemyID = components.EnemyID

// Snapshot is a copy of one enemy's state. Mutating it has no effect on the
// enemy.
type Snapshot struct {
	ID           EnemyID
	Name         string
	Position     mgl64.Vec3
	Yaw          float64
	HP           int
	MaxHP        int
	State        cfg.StateID
	LastAttackMs int64
	HasAttacked  bool
}

func (s Snapshot) Dead() bool {
	return s.State == cfg.StateDead
}

type Manager struct {
	world donburi.World
	arena *donburi.Entry
	space *resolv.Space
	scene Scene
	clock Clock

	logger     *log.Logger
	rasterize  components.RasterizeFunc
	hysteresis float64

	nextID   EnemyID
	entities map[EnemyID]*donburi.Entry
	types    map[cfg.EnemyTypeConfig]*cfg.EnemyTypeConfig
}

type Option func(*Manager)

// WithSpace registers the hit-zones in space instead of a private one. The
// space must cover config.Arena, which bounds spawning and pursuit. Movement
// does not collide against the space's other objects.
func WithSpace(space *resolv.Space) Option {
	return func(m *Manager) { m.space = space }
}

func WithClock(clock Clock) Option {
	return func(m *Manager) { m.clock = clock }
}

func WithLogger(logger *log.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// WithRasterizer replaces the health indicator drawing.
func WithRasterizer(fn components.RasterizeFunc) Option {
	return func(m *Manager) { m.rasterize = fn }
}

// WithHysteresis sets the margin enemies need to cross before dropping out
// of Pursuing or Attacking. The default comes from config.Enemy.Hysteresis.
func WithHysteresis(h float64) Option {
	return func(m *Manager) { m.hysteresis = h }
}

// NewManager creates an empty manager adding its renderables to scene.
// A nil scene discards them.
func NewManager(scene Scene, opts ...Option) *Manager {
	if scene == nil {
		scene = NopScene{}
	}
	m := &Manager{
		world:      donburi.NewWorld(),
		scene:      scene,
		logger:     log.Default(),
		rasterize:  systems.RasterizeHealthBar,
		hysteresis: cfg.Enemy.Hysteresis,
		entities:   make(map[EnemyID]*donburi.Entry),
		types:      make(map[cfg.EnemyTypeConfig]*cfg.EnemyTypeConfig),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.clock == nil {
		m.clock = NewSystemClock()
	}
	if m.space == nil {
		m.space = factory.CreateSpace()
	}

	m.arena = factory.CreateArena(m.world, components.ArenaData{
		Space:      m.space,
		Scene:      m.scene,
		Logger:     m.logger,
		Rasterize:  m.rasterize,
		Hysteresis: m.hysteresis,
	})
	return m
}

// SpawnEnemy creates one enemy of type t standing at pos, with full health,
// no attack on record and a full health indicator, and adds it to the scene.
// pos must leave every hit-zone inside the collision space.
func (m *Manager) SpawnEnemy(t cfg.EnemyTypeConfig, pos mgl64.Vec3) (EnemyID, error) {
	if err := cfg.ValidateEnemyType(t); err != nil {
		return 0, &PreconditionError{Op: "spawn", Field: "type", Value: t.Name, Err: err}
	}
	if !finiteVec(pos) {
		return 0, &PreconditionError{Op: "spawn", Field: "position", Value: pos}
	}
	if !factory.InArena(pos) {
		return 0, &PreconditionError{Op: "spawn", Field: "position", Value: pos, Err: ErrOutsideArena}
	}

	m.nextID++
	id := m.nextID
	e := factory.CreateEnemy(m.world, m.space, id, m.sharedType(t), pos)
	systems.RefreshHealthBar(e, m.rasterize, m.logger)

	m.scene.Add(components.Model.Get(e).Renderable)
	m.entities[id] = e
	return id, nil
}

// Update advances every living enemy by delta seconds against the player
// standing at player. onPlayerHit is called once per attack landed this
// frame; it may be nil.
func (m *Manager) Update(delta float64, player mgl64.Vec3, onPlayerHit func(damage float64)) error {
	if delta < 0 || !gamemath.IsFinite(delta) {
		return &PreconditionError{Op: "update", Field: "delta", Value: delta}
	}
	if !finiteVec(player) {
		return &PreconditionError{Op: "update", Field: "player position", Value: player}
	}

	frame := components.Frame.Get(m.arena)
	*frame = components.FrameData{
		Delta:       delta,
		NowMs:       m.clock.NowMillis(),
		Player:      player,
		OnPlayerHit: onPlayerHit,
	}

	systems.UpdateHealthBars(m.world)
	systems.UpdateEnemies(m.world)
	systems.UpdateHitZones(m.world)
	systems.UpdateDeaths(m.world)
	systems.UpdateModels(m.world)

	frame.OnPlayerHit = nil
	m.drainRemoved()
	return nil
}

// ApplyDamage removes amount health from the enemy, clamped at zero. An
// enemy reaching zero dies. Damaging a dead enemy changes nothing.
func (m *Manager) ApplyDamage(id EnemyID, amount int) (Snapshot, error) {
	if amount < 0 {
		return Snapshot{}, &PreconditionError{Op: "damage", Field: "amount", Value: amount}
	}
	e, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	if components.State.Get(e).CurrentState == cfg.StateDead {
		return snapshotOf(e), nil
	}

	health := components.Health.Get(e)
	health.Damage(amount)
	if health.Depleted() {
		systems.Kill(m.world, e)
	}
	return snapshotOf(e), nil
}

// Remove despawns the enemy immediately, dead or alive.
func (m *Manager) Remove(id EnemyID) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	systems.RemoveEnemy(m.world, e)
	m.drainRemoved()
	return nil
}

// Enemies returns a snapshot of every enemy still in the scene, ordered by ID.
func (m *Manager) Enemies() []Snapshot {
	out := make([]Snapshot, 0, len(m.entities))
	tags.Enemy.Each(m.world, func(e *donburi.Entry) {
		out = append(out, snapshotOf(e))
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *Manager) Enemy(id EnemyID) (Snapshot, bool) {
	e, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, false
	}
	return snapshotOf(e), true
}

// Len returns the number of enemies in the scene, corpses included.
func (m *Manager) Len() int {
	return len(m.entities)
}

// ZoneAt returns the enemy and hit-zone occupying the world point p.
func (m *Manager) ZoneAt(p mgl64.Vec3) (EnemyID, cfg.ZoneID, bool) {
	owner, zone, ok := systems.ZoneAt(m.space, p)
	if !ok {
		return 0, cfg.ZoneNone, false
	}
	return components.Enemy.Get(owner).ID, zone, true
}

// Space returns the collision space holding the hit-zones.
func (m *Manager) Space() *resolv.Space {
	return m.space
}

func (m *Manager) lookup(id EnemyID) (*donburi.Entry, error) {
	e, ok := m.entities[id]
	if !ok || !e.Valid() {
		return nil, ErrUnknownEnemy
	}
	return e, nil
}

// sharedType returns one pointer per distinct archetype so every enemy of a
// type references the same configuration.
func (m *Manager) sharedType(t cfg.EnemyTypeConfig) *cfg.EnemyTypeConfig {
	if p, ok := m.types[t]; ok {
		return p
	}
	p := new(cfg.EnemyTypeConfig)
	*p = t
	m.types[t] = p
	return p
}

func (m *Manager) drainRemoved() {
	arena := components.Arena.Get(m.arena)
	for _, id := range arena.Removed {
		delete(m.entities, id)
	}
	arena.Removed = arena.Removed[:0]
}

func snapshotOf(e *donburi.Entry) Snapshot {
	enemy := components.Enemy.Get(e)
	transform := components.Transform.Get(e)
	health := components.Health.Get(e)
	return Snapshot{
		ID:           enemy.ID,
		Name:         enemy.TypeConfig.Name,
		Position:     transform.Position,
		Yaw:          transform.Yaw,
		HP:           health.Current,
		MaxHP:        health.Max,
		State:        components.State.Get(e).CurrentState,
		LastAttackMs: enemy.LastAttackMs,
		HasAttacked:  enemy.HasAttacked,
	}
}

func finiteVec(v mgl64.Vec3) bool {
	return gamemath.IsFinite(v.X()) && gamemath.IsFinite(v.Y()) && gamemath.IsFinite(v.Z())
}
