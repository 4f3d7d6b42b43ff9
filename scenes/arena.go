package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/quai/assets"
	cfg "github.com/automoto/quai/config"
	"github.com/automoto/quai/enemies"
	"github.com/automoto/quai/fonts"
	"github.com/automoto/quai/shared/leveldata"
	"github.com/automoto/quai/render"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

const playerEyeline = 1.7

var (
	floorColor  = color.RGBA{R: 0x1a, G: 0x1c, B: 0x22, A: 255}
	gridColor   = color.RGBA{R: 0x2a, G: 0x2d, B: 0x36, A: 255}
	playerColor = color.RGBA{R: 0xff, G: 0xd1, B: 0x66, A: 255}
)

// ArenaScene is a single-player arena viewed from above: the player walks on
// the XZ plane and shoots at enemies spawned wave by wave from a layout.
type ArenaScene struct {
	sceneChanger SceneChanger
	once         sync.Once

	manager *enemies.Manager
	scene   *render.Scene
	layout  *leveldata.SpawnLayout
	saved   SavedSettings

	player   mgl64.Vec3
	health   int
	nextWave int
	status   string
}

func NewArenaScene(sc SceneChanger, saved *SavedSettings) *ArenaScene {
	as := &ArenaScene{sceneChanger: sc}
	if saved != nil {
		as.saved = *saved
	}
	return as
}

func (as *ArenaScene) configure() {
	name := as.saved.Layout
	if name == "" {
		name = assets.DefaultLayout
	}
	layouts := assets.MustLoadLayouts()
	layout, ok := layouts[name]
	if !ok {
		log.Printf("Warning: saved layout %q not found, using %s", name, assets.DefaultLayout)
		layout = layouts[assets.DefaultLayout]
	}
	as.layout = layout
	as.saved.Layout = layout.Name

	as.scene = render.NewScene()
	as.manager = enemies.NewManager(as.scene)
	as.health = cfg.Client.PlayerHealth

	as.spawnWave(as.saved.Wave)
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	if as.health <= 0 {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			as.saved.Wave = 0
			as.sceneChanger.ChangeScene(NewArenaScene(as.sceneChanger, &as.saved))
		}
		return
	}

	dt := 1 / float64(ebiten.TPS())
	as.handleMovement(dt)
	as.handleKeys()
	as.handleShot()

	onHit := func(damage float64) {
		as.health -= int(damage)
		if as.health < 0 {
			as.health = 0
		}
	}
	eye := as.player.Add(mgl64.Vec3{0, playerEyeline, 0})
	if err := as.manager.Update(dt, eye, onHit); err != nil {
		log.Printf("[arena] enemy update failed: %v", err)
	}

	// Wave cleared: queue the next one automatically
	if as.manager.Len() == 0 && as.nextWave < as.layout.Waves {
		as.spawnWave(as.nextWave)
	}
}

func (as *ArenaScene) handleMovement(dt float64) {
	var dir mgl64.Vec3
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		dir[2]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		dir[2]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		dir[0]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		dir[0]++
	}
	if dir.Len() == 0 {
		return
	}
	as.player = as.player.Add(dir.Normalize().Mul(cfg.Client.PlayerSpeed * dt))
}

func (as *ArenaScene) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		as.saved.ShowHitZones = !as.saved.ShowHitZones
		_ = SaveSettings(&as.saved)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		wave := as.nextWave
		if wave >= as.layout.Waves {
			wave = 0
		}
		as.spawnWave(wave)
	}
}

func (as *ArenaScene) handleShot() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	head := ebiten.IsKeyPressed(ebiten.KeyShift)
	target := AimPoint(as.view(), mx, my, head)

	id, zone, ok := as.manager.ZoneAt(target)
	if !ok {
		as.status = "miss"
		return
	}
	damage := cfg.Client.ShotDamage
	if zone == cfg.ZoneHead {
		damage = cfg.Client.HeadshotDamage
	}
	snap, err := as.manager.ApplyDamage(id, damage)
	if err != nil {
		log.Printf("[arena] shot on enemy %d: %v", id, err)
		return
	}
	as.status = fmt.Sprintf("%s hit on %s: %d/%d", zone, snap.Name, snap.HP, snap.MaxHP)
}

// AimPoint converts a cursor position into the world point a shot samples:
// body height by default, head height when aiming high.
func AimPoint(view render.View, mx, my int, head bool) mgl64.Vec3 {
	y := cfg.HitZone.BodyY
	if head {
		y = cfg.HitZone.HeadY
	}
	return view.ToWorld(mx, my, y)
}

func (as *ArenaScene) spawnWave(wave int) {
	if wave < 0 || wave >= as.layout.Waves {
		wave = 0
	}
	ids, err := as.manager.SpawnLayout(as.layout, wave)
	if err != nil {
		log.Printf("[arena] failed to spawn wave %d: %v", wave, err)
	}
	as.nextWave = wave + 1
	as.saved.Wave = wave
	_ = SaveSettings(&as.saved)
	as.status = fmt.Sprintf("wave %d: %d enemies", wave+1, len(ids))
}

func (as *ArenaScene) view() render.View {
	return render.View{
		Camera:        as.player,
		PixelsPerUnit: cfg.Client.PixelsPerUnit,
		Width:         cfg.Client.Width,
		Height:        cfg.Client.Height,
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(floorColor)
	if as.manager == nil {
		return
	}

	view := as.view()
	as.drawGrid(screen, view)
	as.scene.Draw(screen, view)

	px, py := view.ToScreen(as.player)
	vector.FillCircle(screen, px, py, view.Length(0.5), playerColor, true)

	if as.saved.ShowHitZones {
		render.DrawHitZones(screen, view, as.manager.Space(), cfg.Arena.Width, cfg.Arena.Depth)
	}

	as.drawHUD(screen)
}

func (as *ArenaScene) drawGrid(screen *ebiten.Image, view render.View) {
	const step = 10
	half := float64(cfg.Arena.Width) / 2
	for v := -half; v <= half; v += step {
		x0, y0 := view.ToScreen(mgl64.Vec3{v, 0, -half})
		x1, y1 := view.ToScreen(mgl64.Vec3{v, 0, half})
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, gridColor, false)
		x0, y0 = view.ToScreen(mgl64.Vec3{-half, 0, v})
		x1, y1 = view.ToScreen(mgl64.Vec3{half, 0, v})
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, gridColor, false)
	}
}

func (as *ArenaScene) drawHUD(screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(12, 10)
	hud := fmt.Sprintf("HP %d/%d   enemies %d   wave %d/%d",
		as.health, cfg.Client.PlayerHealth, as.manager.Len(), as.nextWave, as.layout.Waves)
	text.Draw(screen, hud, fonts.HUD.Get(), op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(12, 30)
	text.Draw(screen, as.status, fonts.HUDSmall.Get(), op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(12, float64(cfg.Client.Height-24))
	text.Draw(screen, "WASD move  click shoot  shift+click headshot  H hit-zones  N next wave", fonts.HUDSmall.Get(), op)

	if as.health <= 0 {
		op = &text.DrawOptions{}
		op.GeoM.Translate(float64(cfg.Client.Width)/2, float64(cfg.Client.Height)/2)
		op.PrimaryAlign = text.AlignCenter
		text.Draw(screen, "YOU DIED - press R", fonts.HUDLarge.Get(), op)
	}
}
