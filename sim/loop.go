package sim

import (
	"log"
	"runtime/debug"
	"sync"
	"time"
)

// GameLoop steps a Simulation on a wall clock ticker.
type GameLoop struct {
	sim      *Simulation
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once

	// BeforeTick runs right before every tick, on the loop goroutine.
	// Input should be fed from here.
	BeforeTick func(s *Simulation)
}

func NewGameLoop(sim *Simulation, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = sim.Tuning().Physics.TickRate
	}
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run blocks, ticking until Stop is called.
func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}

func (g *GameLoop) tick() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: tick panicked: %v\n%s", r, debug.Stack())
		}
	}()

	if g.BeforeTick != nil {
		g.BeforeTick(g.sim)
	}
	g.sim.Step(1 / float64(g.tickRate))
}
