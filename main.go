package main

import (
	"flag"
	"log"
	"os"
	"time"

	"raysnake/game"
	"raysnake/game/manager"
	"raysnake/game/types"
	"raysnake/sound"
	"raysnake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

func main() {
	seed := flag.Uint64("seed", 0, "Apple placement seed (0 = clock)")
	mute := flag.Bool("mute", false, "Disable sound effects")
	verbose := flag.Bool("verbose", false, "Show raylib info logging")
	flag.Parse()

	logger := log.New(os.Stderr, "[snake] ", log.LstdFlags|log.Lmicroseconds)

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	logger.Printf("starting: seed=%d grid=%dx%d tick=%.3fs", *seed, types.GridSize, types.GridSize, types.TickInterval)

	if *verbose {
		rl.SetTraceLogLevel(rl.LogInfo)
	} else {
		rl.SetTraceLogLevel(rl.LogWarning)
	}

	rl.InitWindow(ui.WindowWidth, ui.WindowHeight, ui.WindowTitle)
	defer rl.CloseWindow()

	rl.SetTargetFPS(types.FramesPerSecond)

	var player *sound.Player
	if !*mute {
		p, err := sound.New(logger)
		if err != nil {
			logger.Printf("audio init failed (continuing without sound): %v", err)
		} else {
			player = p
			defer player.Close()
		}
	}

	stats := manager.NewStateManager(logger)
	events := game.NewEventBus()
	wireEvents(events, stats, player, logger)

	g := game.NewGame(rand.New(rand.NewSource(*seed)), events)

	controls := ui.DefaultControls()
	renderer := ui.NewRenderer()
	keyboard := ui.RaylibKeyboard{}
	surface := ui.RaylibSurface{}

	title := ""
	for !rl.WindowShouldClose() {
		controls.Apply(keyboard, g)
		g.Update(float64(rl.GetFrameTime()))

		if t := stats.Title(); t != title {
			title = t
			rl.SetWindowTitle(title)
		}

		rl.BeginDrawing()
		renderer.Draw(surface, g)
		rl.EndDrawing()

		player.Reap()
	}

	stats.EndRound("quit")
	logger.Printf("session over: rounds=%d apples=%d best=%d",
		stats.GetRounds(), stats.GetTotalApples(), stats.GetHighScore())
}

// wireEvents connects game events to session statistics and sound cues.
func wireEvents(events *game.EventBus, stats *manager.StateManager, player *sound.Player, logger *log.Logger) {
	events.Subscribe(game.EventReset, func(e game.Event) {
		stats.EndRound(e.Cause.String())
		stats.BeginRound(e.RoundID, e.Length)
	})
	events.Subscribe(game.EventAppleEaten, func(e game.Event) {
		stats.RecordApple(e.Length)
		player.Play(sound.CueEat)
	})
	events.Subscribe(game.EventCollision, func(e game.Event) {
		logger.Printf("round %s: %s collision at (%d,%d)", e.RoundID, e.Collision, e.Pos.X, e.Pos.Y)
		player.Play(sound.CueGameOver)
	})
	events.Subscribe(game.EventBoardFull, func(e game.Event) {
		logger.Printf("round %s: board full at length %d", e.RoundID, e.Length)
		player.Play(sound.CueWin)
	})
}
