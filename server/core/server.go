package core

import (
	"log"
	"sync"
	"time"

	cfg "github.com/automoto/quai/config"
	"github.com/automoto/quai/enemies"
	"github.com/automoto/quai/shared/messages"
	"github.com/automoto/quai/shared/netcomponents"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Server manages the game state and client connections
type Server struct {
	world     donburi.World
	loop      *GameLoop
	transport *transports.WsServerTransport
	level     *ServerLevel

	name      string
	version   string
	moveSpeed float64

	enemies       *enemies.Manager
	clock         *enemies.StepClock
	enemyEntities map[enemies.EnemyID]donburi.Entity
	nextWave      int

	// Owned by the tick goroutine
	players   map[string]*PlayerPhysics
	joinOrder []string

	// Commands queued by router callbacks, drained each tick
	commands []func()
	mu       sync.Mutex
}

// NewServer creates a new game server running level. An empty version accepts
// every client.
func NewServer(tickRate int, name, version string, level *ServerLevel) *Server {
	world := donburi.NewWorld()
	clock := &enemies.StepClock{}

	s := &Server{
		world:         world,
		level:         level,
		name:          name,
		version:       version,
		moveSpeed:     cfg.Server.PlayerSpeed,
		clock:         clock,
		enemyEntities: make(map[enemies.EnemyID]donburi.Entity),
		players:       make(map[string]*PlayerPhysics),
	}
	s.enemies = enemies.NewManager(nil,
		enemies.WithSpace(level.Space),
		enemies.WithClock(clock),
		enemies.WithLogger(log.Default()),
	)
	s.loop = NewGameLoop(s, tickRate)

	// Set up the world for esync
	srvsync.UseEsync(world)

	// Register router callbacks
	s.setupRouterCallbacks()

	if level.Layout.Waves > 0 {
		s.spawnWave(0)
	}

	return s
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	// Start game loop
	go s.loop.Run()

	// Create and start WebSocket transport
	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("[server] client connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		if err != nil {
			log.Printf("[server] client %s disconnected with error: %v", client.Id(), err)
		} else {
			log.Printf("[server] client %s disconnected", client.Id())
		}
		id := client.Id()
		s.enqueue(func() { s.leavePlayer(id) })
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		id := client.Id()
		s.enqueue(func() { s.joinPlayer(id, client, req) })
	})

	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		id := client.Id()
		s.enqueue(func() { s.applyInput(id, input) })
	})

	router.On(func(client *router.NetworkClient, shot messages.Shot) {
		id := client.Id()
		s.enqueue(func() {
			if pp := s.players[id]; pp != nil {
				s.handleShot(pp, shot)
			}
		})
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

func (s *Server) enqueue(cmd func()) {
	s.mu.Lock()
	s.commands = append(s.commands, cmd)
	s.mu.Unlock()
}

// ProcessCommands runs every command queued by the router since the last tick.
func (s *Server) ProcessCommands() {
	s.mu.Lock()
	cmds := s.commands
	s.commands = nil
	s.mu.Unlock()

	for _, cmd := range cmds {
		cmd()
	}
}

// Step advances the simulation by dt seconds.
func (s *Server) Step(dt float64) {
	s.clock.Advance(time.Duration(dt * float64(time.Second)))
	s.ProcessCommands()
	s.updatePhysics(dt)
	s.updateEnemies(dt)
}

func (s *Server) joinPlayer(clientID string, client *router.NetworkClient, req messages.JoinRequest) {
	if s.version != "" && req.Version != s.version {
		log.Printf("[server] rejected %s: version %q, want %q", clientID, req.Version, s.version)
		if client != nil {
			if err := client.SendMessage(messages.JoinRejected{Reason: "version mismatch"}); err != nil {
				log.Printf("[server] failed to reject %s: %v", clientID, err)
			}
		}
		return
	}
	if _, exists := s.players[clientID]; exists {
		return
	}

	pp := newPlayerPhysics(s.level, clientID, mgl64.Vec3{})
	pp.Client = client

	// Create player entity with network components
	entity := s.world.Create(netcomponents.NetPosition, netcomponents.NetPlayerState)
	entry := s.world.Entry(entity)
	netcomponents.NetPlayerState.SetValue(entry, netcomponents.NetPlayerStateData{
		Name:      req.PlayerName,
		Health:    cfg.Server.PlayerHealth,
		MaxHealth: cfg.Server.PlayerHealth,
	})

	// Mark entity for network sync with interpolation for position
	err := srvsync.NetworkSync(s.world, &entity,
		srvsync.WithInterp(netcomponents.NetPosition),
		netcomponents.NetPlayerState,
	)
	if err != nil {
		log.Printf("[server] failed to setup network sync for player: %v", err)
		s.world.Remove(entity)
		removePlayerPhysics(s.level, pp)
		return
	}
	pp.Entity = entity

	s.players[clientID] = pp
	s.joinOrder = append(s.joinOrder, clientID)

	accepted := messages.JoinAccepted{
		ServerName: s.name,
		TickRate:   s.loop.tickRate,
		Layout:     s.level.Layout.Name,
	}
	if nid := esync.GetNetworkId(s.world.Entry(entity)); nid != nil {
		accepted.NetworkID = *nid
	}
	s.send(pp, accepted)

	log.Printf("[server] player %q spawned for client %s", req.PlayerName, clientID)
}

func (s *Server) leavePlayer(clientID string) {
	pp, exists := s.players[clientID]
	if !exists {
		return
	}
	delete(s.players, clientID)
	for i, id := range s.joinOrder {
		if id == clientID {
			s.joinOrder = append(s.joinOrder[:i], s.joinOrder[i+1:]...)
			break
		}
	}

	removePlayerPhysics(s.level, pp)
	if s.world.Valid(pp.Entity) {
		s.world.Remove(pp.Entity)
		log.Printf("[server] player entity removed for client %s", clientID)
	}
}

func (s *Server) applyInput(clientID string, input messages.PlayerInput) {
	pp, exists := s.players[clientID]
	if !exists || input.Sequence < pp.LastInputSeq {
		return
	}
	pp.MoveX = sanitizeAxis(input.MoveX)
	pp.MoveZ = sanitizeAxis(input.MoveZ)
	pp.LastInputSeq = input.Sequence
}

func (s *Server) send(pp *PlayerPhysics, msg any) {
	if pp.Client == nil {
		return
	}
	if err := pp.Client.SendMessage(msg); err != nil {
		log.Printf("[server] send to %s failed: %v", pp.ClientID, err)
	}
}

func (s *Server) broadcast(msg any) {
	for _, id := range s.joinOrder {
		if pp := s.players[id]; pp != nil {
			s.send(pp, msg)
		}
	}
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// Enemies returns the enemy manager driven by the tick loop.
func (s *Server) Enemies() *enemies.Manager {
	return s.enemies
}

// PlayerCount returns the number of joined players
func (s *Server) PlayerCount() int {
	return len(s.players)
}
