package factory

import (
	"github.com/automoto/quai/archetypes"
	"github.com/automoto/quai/components"
	cfg "github.com/automoto/quai/config"
	"github.com/automoto/quai/shared/gamemath"
	"github.com/automoto/quai/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns an enemy of type t at pos together with its body and
// head hit-zones. The zones are added to space when it is not nil.
// t is stored by reference and must outlive the enemy.
func CreateEnemy(w donburi.World, space *resolv.Space, id components.EnemyID, t *cfg.EnemyTypeConfig, pos mgl64.Vec3) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)

	components.Enemy.SetValue(enemy, components.EnemyData{
		ID:         id,
		TypeConfig: t,
	})
	components.Transform.SetValue(enemy, components.TransformData{
		Position: pos,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: t.MaxHP,
		Max:     t.MaxHP,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.StateDormant,
		PreviousState: cfg.StateNone,
	})

	model := &components.Renderable{
		Name:     t.Name,
		Position: pos,
		Parts: []components.PartData{
			{
				Zone:   cfg.ZoneBody,
				Shape:  components.ShapeCapsule,
				Radius: cfg.HitZone.BodyRadius,
				Length: cfg.HitZone.BodyLength,
				LocalY: cfg.HitZone.BodyY,
				Color:  t.Color,
			},
			{
				Zone:   cfg.ZoneHead,
				Shape:  components.ShapeSphere,
				Radius: cfg.HitZone.HeadRadius,
				LocalY: cfg.HitZone.HeadY,
				Color:  cfg.HitZone.HeadColor,
			},
		},
		Overlay: components.BillboardData{
			ScaleX:  cfg.HealthBar.ScaleX,
			ScaleY:  cfg.HealthBar.ScaleY,
			OffsetY: cfg.HealthBar.OffsetY,
			Visible: true,
		},
	}
	components.Model.SetValue(enemy, components.ModelData{Renderable: model})

	zones := []*donburi.Entry{
		CreateHitZone(w, space, enemy, components.HitZoneData{
			Zone:   cfg.ZoneBody,
			LocalY: cfg.HitZone.BodyY,
			Radius: cfg.HitZone.BodyRadius,
			Length: cfg.HitZone.BodyLength,
		}),
		CreateHitZone(w, space, enemy, components.HitZoneData{
			Zone:   cfg.ZoneHead,
			LocalY: cfg.HitZone.HeadY,
			Radius: cfg.HitZone.HeadRadius,
		}),
	}
	components.Enemy.Get(enemy).Zones = zones

	return enemy
}

// CreateHitZone spawns one collidable zone for owner. zone.Owner is set here.
func CreateHitZone(w donburi.World, space *resolv.Space, owner *donburi.Entry, zone components.HitZoneData) *donburi.Entry {
	hz := archetypes.HitZone.Spawn(w)
	zone.Owner = owner

	x, y := ZoneFootprint(components.Transform.Get(owner).Position, zone.Radius)
	obj := resolv.NewObject(x, y, zone.Radius*2, zone.Radius*2, tags.ResolvEnemy, zoneTag(zone.Zone))
	obj.Data = hz

	components.Object.SetValue(hz, components.ObjectData{Object: obj})
	components.HitZone.SetValue(hz, zone)

	if space != nil {
		space.Add(obj)
	}
	return hz
}

// ZoneFootprint returns the top-left corner, in space coordinates, of the
// square covering a zone of the given radius centered on pos.
func ZoneFootprint(pos mgl64.Vec3, radius float64) (x, y float64) {
	cx, cy := gamemath.ToPlane(pos, cfg.Arena.Width, cfg.Arena.Depth)
	return cx - radius, cy - radius
}

func zoneTag(zone cfg.ZoneID) string {
	if zone == cfg.ZoneHead {
		return tags.ResolvHead
	}
	return tags.ResolvBody
}
