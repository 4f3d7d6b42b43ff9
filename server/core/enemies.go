package core

import (
	"log"

	cfg "github.com/automoto/quai/config"
	"github.com/automoto/quai/enemies"
	"github.com/automoto/quai/shared/messages"
	"github.com/automoto/quai/shared/netcomponents"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
)

// updateEnemies runs one tick of enemy behavior against the target player,
// then mirrors the result into the synced world.
func (s *Server) updateEnemies(dt float64) {
	target := s.target()
	if target == nil {
		return
	}

	entry := s.world.Entry(target.Entity)
	state := netcomponents.NetPlayerState.Get(entry)
	onHit := func(damage float64) {
		state.Health -= int(damage)
		if state.Health < 0 {
			state.Health = 0
		}
		if !state.Alive() {
			log.Printf("[server] player %s was killed", target.ClientID)
		}
	}

	if err := s.enemies.Update(dt, target.Eye(), onHit); err != nil {
		log.Printf("[server] enemy update failed: %v", err)
		return
	}

	s.mirrorEnemies()
	s.advanceWave()
}

// target returns the first joined player still alive, or nil.
func (s *Server) target() *PlayerPhysics {
	for _, id := range s.joinOrder {
		pp := s.players[id]
		if pp == nil || !s.world.Valid(pp.Entity) {
			continue
		}
		if netcomponents.NetPlayerState.Get(s.world.Entry(pp.Entity)).Alive() {
			return pp
		}
	}
	return nil
}

// mirrorEnemies copies every enemy snapshot into its synced entity, creating
// and removing entities as enemies appear and disappear.
func (s *Server) mirrorEnemies() {
	seen := make(map[enemies.EnemyID]bool, s.enemies.Len())

	for _, snap := range s.enemies.Enemies() {
		seen[snap.ID] = true

		entity, ok := s.enemyEntities[snap.ID]
		if !ok {
			var err error
			entity, err = s.createEnemyEntity()
			if err != nil {
				log.Printf("[server] failed to setup network sync for enemy %d: %v", snap.ID, err)
				continue
			}
			s.enemyEntities[snap.ID] = entity
		}

		entry := s.world.Entry(entity)
		netcomponents.NetPosition.SetValue(entry, netcomponents.NetPositionData{
			X: snap.Position.X(),
			Y: snap.Position.Y(),
			Z: snap.Position.Z(),
		})
		netcomponents.NetEnemy.SetValue(entry, netcomponents.NetEnemyData{
			EnemyID:   uint64(snap.ID),
			X:         snap.Position.X(),
			Y:         snap.Position.Y(),
			Z:         snap.Position.Z(),
			Yaw:       snap.Yaw,
			TypeName:  snap.Name,
			State:     snap.State,
			Health:    snap.HP,
			MaxHealth: snap.MaxHP,
		})
	}

	for id, entity := range s.enemyEntities {
		if seen[id] {
			continue
		}
		if s.world.Valid(entity) {
			s.world.Remove(entity)
		}
		delete(s.enemyEntities, id)
	}
}

func (s *Server) createEnemyEntity() (donburi.Entity, error) {
	entity := s.world.Create(netcomponents.NetPosition, netcomponents.NetEnemy)
	err := srvsync.NetworkSync(s.world, &entity,
		srvsync.WithInterp(netcomponents.NetPosition, netcomponents.NetEnemy),
	)
	if err != nil {
		s.world.Remove(entity)
		return 0, err
	}
	return entity, nil
}

// advanceWave spawns the next layout wave once the arena is empty.
func (s *Server) advanceWave() {
	if s.enemies.Len() > 0 || s.nextWave >= s.level.Layout.Waves {
		return
	}
	s.spawnWave(s.nextWave)
}

func (s *Server) spawnWave(wave int) {
	ids, err := s.enemies.SpawnLayout(s.level.Layout, wave)
	if err != nil {
		log.Printf("[server] failed to spawn wave %d: %v", wave, err)
		// Skip the broken wave instead of retrying it every tick
		s.nextWave = wave + 1
		return
	}
	s.nextWave = wave + 1
	s.broadcast(messages.WaveStarted{Wave: wave, Enemies: len(ids)})
}

// handleShot resolves a shot against the hit-zones and damages the enemy hit.
func (s *Server) handleShot(pp *PlayerPhysics, shot messages.Shot) {
	if !netcomponents.NetPlayerState.Get(s.world.Entry(pp.Entity)).Alive() {
		return
	}

	id, zone, ok := s.enemies.ZoneAt(mgl64.Vec3{shot.X, shot.Y, shot.Z})
	if !ok {
		return
	}

	damage := cfg.Client.ShotDamage
	if zone == cfg.ZoneHead {
		damage = cfg.Client.HeadshotDamage
	}

	snap, err := s.enemies.ApplyDamage(id, damage)
	if err != nil {
		log.Printf("[server] shot from %s on enemy %d: %v", pp.ClientID, id, err)
		return
	}

	s.send(pp, messages.HitConfirmed{
		Sequence:  shot.Sequence,
		EnemyID:   uint64(id),
		Zone:      zone,
		Damage:    damage,
		Remaining: snap.HP,
	})
}
