// Command skatesim runs a course headless with the autopilot and reports the
// race.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/skatedog/assets"
	"github.com/automoto/skatedog/autopilot"
	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/config"
	"github.com/automoto/skatedog/scoring"
	"github.com/automoto/skatedog/sim"
	"github.com/automoto/skatedog/trick"
)

func main() {
	courseArg := flag.String("course", assets.DefaultCourse, "embedded course name or path to a .tmx file")
	tricksPath := flag.String("tricks", "", "trick catalog YAML (default: built-in)")
	tuningPath := flag.String("tuning", "", "tuning YAML applied over the defaults")
	seconds := flag.Float64("seconds", 300, "simulated seconds before giving up")
	tickRate := flag.Int("tickrate", 0, "ticks per second (0 = tuning value)")
	realtime := flag.Bool("realtime", false, "tick on the wall clock instead of as fast as possible")
	seed := flag.Int64("seed", 42, "autopilot random seed")
	name := flag.String("name", "autopilot", "name recorded on the leaderboard")
	save := flag.Bool("save", false, "record the race time on the leaderboard")
	flag.Parse()

	if *tuningPath != "" {
		if err := config.LoadFile(*tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}
	if *tickRate > 0 {
		config.Physics.TickRate = *tickRate
	}

	c, err := assets.ResolveCourse(*courseArg)
	if err != nil {
		log.Fatalf("Failed to load course: %v", err)
	}

	var catalog *trick.Catalog
	if *tricksPath != "" {
		if catalog, err = trick.LoadCatalogFile(*tricksPath); err != nil {
			log.Fatalf("Failed to load tricks: %v", err)
		}
	}

	score := scoring.NewTrickScore(config.Scoring.TrickBaseScore)
	s, err := sim.New(sim.Options{
		Course:  c,
		Catalog: catalog,
		Score:   score,
	})
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}

	r := newReport(s)
	pilot := autopilot.New(c, autopilot.DefaultSettings(), *seed)
	maxTicks := int(*seconds * float64(s.Tuning().Physics.TickRate))

	log.Printf("Running %q for up to %.0fs at %d ticks/s", c.Name, *seconds, s.Tuning().Physics.TickRate)

	if *realtime {
		runRealtime(s, pilot, r, maxTicks)
	} else {
		for i := 0; i < maxTicks && !r.finished; i++ {
			pilot.Drive(s)
			s.Tick()
		}
	}

	r.summary(score)
	if !r.finished {
		log.Printf("Race not finished after %.1fs", s.Now())
		os.Exit(1)
	}
	if *save {
		recordTime(*name, r.totalTime)
	}
}

// runRealtime ticks on a GameLoop until the race ends, the tick budget runs
// out or the process is interrupted.
func runRealtime(s *sim.Simulation, pilot *autopilot.Autopilot, r *report, maxTicks int) {
	loop := sim.NewGameLoop(s, s.Tuning().Physics.TickRate)
	ticks := 0
	loop.BeforeTick = func(s *sim.Simulation) {
		ticks++
		if r.finished || ticks > maxTicks {
			loop.Stop()
			return
		}
		pilot.Drive(s)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Interrupted, stopping...")
		loop.Stop()
	}()

	loop.Run()
}

func recordTime(name string, total float64) {
	store, err := scoring.OpenStore(config.Scoring.LeaderboardAppKey)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return
	}
	board := scoring.OpenLeaderboard(store, config.Scoring.LeaderboardSize)
	rank, err := board.Add(name, total)
	if err != nil {
		log.Printf("Warning: Could not save race time: %v", err)
		return
	}
	if rank == 0 {
		log.Printf("%.2fs did not make the leaderboard", total)
		return
	}
	log.Printf("Leaderboard rank #%d", rank)
	for i, e := range board.Entries() {
		log.Printf("  %2d. %-12s %.2fs", i+1, e.Name, e.Time)
	}
}

// report logs events as they arrive and keeps race totals.
type report struct {
	finished  bool
	totalTime float64
	bestLap   float64
	tricks    int
	bails     int
	respawns  int
}

func newReport(s *sim.Simulation) *report {
	r := &report{}
	sim.Subscribe(s, components.TrickStarted, func(e components.TrickStartedEvent) {
		r.tricks++
		log.Printf("[%7.2f] trick %s", s.Now(), e.Name)
	})
	sim.Subscribe(s, components.LandingResult, func(e components.LandingResultEvent) {
		log.Printf("[%7.2f] landing %s", s.Now(), e.Outcome)
	})
	sim.Subscribe(s, components.RagdollEntered, func(e components.RagdollEnteredEvent) {
		r.bails++
		log.Printf("[%7.2f] bail (%s)", s.Now(), e.Cause)
	})
	sim.Subscribe(s, components.RespawnCompleted, func(e components.RespawnCompletedEvent) {
		r.respawns++
		log.Printf("[%7.2f] respawn (checkpoint: %t)", s.Now(), e.AtCheckpoint)
	})
	sim.Subscribe(s, components.CheckpointReached, func(e components.CheckpointReachedEvent) {
		log.Printf("[%7.2f] checkpoint %d on lap %d", s.Now(), e.ID, e.Lap)
	})
	sim.Subscribe(s, components.LapCompleted, func(e components.LapCompletedEvent) {
		log.Printf("[%7.2f] lap %d in %.2fs (best %.2fs)", s.Now(), e.Lap, e.Time, e.BestLap)
	})
	sim.Subscribe(s, components.RaceFinished, func(e components.RaceFinishedEvent) {
		r.finished = true
		r.totalTime = e.TotalTime
		r.bestLap = e.BestLap
		log.Printf("[%7.2f] finished in %.2fs", s.Now(), e.TotalTime)
	})
	return r
}

func (r *report) summary(score *scoring.TrickScore) {
	log.Printf("Tricks: %d  Bails: %d  Respawns: %d  Score: %d", r.tricks, r.bails, r.respawns, score.Score())
	if r.finished {
		log.Printf("Total: %.2fs  Best lap: %.2fs", r.totalTime, r.bestLap)
	}
}
