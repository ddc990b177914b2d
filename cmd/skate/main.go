// Command skate drives the skater interactively with a top-down debug view.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"

	"github.com/automoto/skatedog/assets"
	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/config"
	"github.com/automoto/skatedog/fonts"
	"github.com/automoto/skatedog/scoring"
	"github.com/automoto/skatedog/sim"
	"github.com/automoto/skatedog/trick"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	screenWidth  = 960
	screenHeight = 540
)

// trickAnimator remembers which trick animation is playing for the HUD.
type trickAnimator struct {
	current string
}

func (a *trickAnimator) PlayTrick(def trick.Definition) { a.current = def.Animation }
func (a *trickAnimator) StopTrick()                     { a.current = "" }

type Game struct {
	bounds   image.Rectangle
	sim      *sim.Simulation
	input    inputState
	score    *scoring.TrickScore
	animator *trickAnimator
	board    *scoring.Leaderboard
	player   string
	messages *messageLog
}

func NewGame(s *sim.Simulation, score *scoring.TrickScore, animator *trickAnimator, board *scoring.Leaderboard, player string) *Game {
	g := &Game{
		bounds:   image.Rectangle{},
		sim:      s,
		score:    score,
		animator: animator,
		board:    board,
		player:   player,
		messages: newMessageLog(),
	}
	g.subscribe()
	return g
}

func (g *Game) subscribe() {
	sim.Subscribe(g.sim, components.TrickStarted, func(e components.TrickStartedEvent) {
		g.messages.add(e.Name)
	})
	sim.Subscribe(g.sim, components.LandingResult, func(e components.LandingResultEvent) {
		if e.Outcome == components.LandingBoost {
			g.messages.add("Landed!")
		}
	})
	sim.Subscribe(g.sim, components.RagdollEntered, func(e components.RagdollEnteredEvent) {
		g.messages.add(fmt.Sprintf("Bail (%s)", e.Cause))
	})
	sim.Subscribe(g.sim, components.CheckpointReached, func(e components.CheckpointReachedEvent) {
		g.messages.add(fmt.Sprintf("Checkpoint %d", e.ID))
	})
	sim.Subscribe(g.sim, components.LapCompleted, func(e components.LapCompletedEvent) {
		g.messages.add(fmt.Sprintf("Lap %d: %.2fs", e.Lap, e.Time))
	})
	sim.Subscribe(g.sim, components.RaceFinished, func(e components.RaceFinishedEvent) {
		g.messages.add(fmt.Sprintf("Finished in %.2fs", e.TotalTime))
		if g.board == nil {
			return
		}
		rank, err := g.board.Add(g.player, e.TotalTime)
		if err != nil {
			log.Printf("Warning: Could not save race time: %v", err)
		}
		if rank > 0 {
			g.messages.add(fmt.Sprintf("Leaderboard #%d", rank))
		}
	})
}

func (g *Game) Update() error {
	g.input.poll()
	if g.input.justPressed(actionQuit) {
		return ebiten.Termination
	}

	g.sim.Move(g.input.move())
	g.sim.Throttle(g.input.throttleAxis())
	if g.input.justPressed(actionJump) {
		g.sim.Jump(true)
	} else if g.input.justReleased(actionJump) {
		g.sim.Jump(false)
	}
	if g.input.justPressed(actionTrick) {
		g.sim.Trick(true)
	} else if g.input.justReleased(actionTrick) {
		g.sim.Trick(false)
	}
	if g.input.justPressed(actionRespawn) {
		g.sim.Respawn()
	}

	g.sim.Tick()
	g.messages.update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.sim.Snapshot()
	drawCourse(screen, g.sim, snap)
	drawSkater(screen, snap)
	drawFade(screen, snap.Fade)
	g.drawHUD(screen, snap)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, screenWidth, screenHeight)
	return screenWidth, screenHeight
}

func main() {
	courseArg := flag.String("course", assets.DefaultCourse, "embedded course name or path to a .tmx file")
	tricksPath := flag.String("tricks", "", "trick catalog YAML (default: built-in)")
	tuningPath := flag.String("tuning", "", "tuning YAML applied over the defaults")
	player := flag.String("name", "Player", "name recorded on the leaderboard")
	flag.Parse()

	if *tuningPath != "" {
		if err := config.LoadFile(*tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
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

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	score := scoring.NewTrickScore(config.Scoring.TrickBaseScore)
	animator := &trickAnimator{}
	s, err := sim.New(sim.Options{
		Course:   c,
		Catalog:  catalog,
		Animator: animator,
		Score:    score,
	})
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}

	// Persistence is optional; the race still runs without a leaderboard.
	var board *scoring.Leaderboard
	if store, err := scoring.OpenStore(config.Scoring.LeaderboardAppKey); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else {
		board = scoring.OpenLeaderboard(store, config.Scoring.LeaderboardSize)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("skatedog - " + c.Name)
	ebiten.SetTPS(s.Tuning().Physics.TickRate)

	if err := ebiten.RunGame(NewGame(s, score, animator, board, *player)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
