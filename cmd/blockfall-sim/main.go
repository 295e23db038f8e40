package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/plus3/blockfall/game"
)

func main() {
	games := flag.Int("games", 100, "The number of games to autoplay.")
	seed := flag.Uint64("seed", 1, "Base seed for piece sequences and the input policy.")
	maxSteps := flag.Int("max-steps", 500000, "Step cap per game before it is abandoned.")
	flag.Parse()

	log.Println("Starting blockfall autoplay...")

	report := &Report{
		Games:    *games,
		Seed:     *seed,
		MaxSteps: *maxSteps,
		Clears:   intmap.New[int64, int64](8),
		Levels:   intmap.New[int64, int64](16),
		GameTime: Stats{Samples: make([]time.Duration, 0, *games)},
	}

	policy := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

	for i := 0; i < *games; i++ {
		result := playOne(*seed+uint64(i), policy, *maxSteps)

		report.TotalSteps += int64(result.steps)
		report.TotalScore += int64(result.score)
		report.TotalLines += int64(result.lines)
		if result.score > report.BestScore {
			report.BestScore = result.score
		}
		if !result.finished {
			report.Abandoned++
		}
		histAdd(report.Levels, int64(result.level))
		for lines, n := range result.clears {
			for j := int64(0); j < n; j++ {
				histAdd(report.Clears, int64(lines))
			}
		}
		report.GameTime.Samples = append(report.GameTime.Samples, result.elapsed)
	}

	report.TotalTime = time.Since(startTime)
	report.GameTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Autoplay finished.")

	fmt.Println("\n--- Autoplay Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

type gameResult struct {
	steps    int
	score    int
	lines    int
	level    int
	finished bool
	elapsed  time.Duration
	clears   map[int]int64
}

// playOne drives a single engine with a random input policy, acting as a
// zero-latency host: when the lock-delay timer is armed it fires immediately,
// otherwise the gravity timer ticks.
func playOne(seed uint64, policy *rand.Rand, maxSteps int) gameResult {
	engine := game.NewSeeded(seed)

	var gravityArmed, lockArmed, over bool
	drain := func() {
		for _, ev := range engine.DrainEvents() {
			switch ev := ev.(type) {
			case game.TimerReconfigure:
				switch ev.Timer {
				case game.TimerGravity:
					gravityArmed = true
				case game.TimerLockDelay:
					lockArmed = true
				}
			case game.TimerStop:
				gravityArmed = false
			case game.GameOverNotification:
				over = true
			}
		}
	}
	drain()

	result := gameResult{clears: make(map[int]int64)}
	start := time.Now()
	prevLines := 0

	for result.steps < maxSteps && !over {
		result.steps++

		switch policy.IntN(12) {
		case 0:
			engine.Apply(game.CmdRotateCW)
		case 1:
			engine.Apply(game.CmdRotateCCW)
		case 2, 3:
			engine.Apply(game.CmdMoveLeft)
		case 4, 5:
			engine.Apply(game.CmdMoveRight)
		case 6:
			engine.Apply(game.CmdHardDrop)
		}
		drain()

		if lockArmed {
			lockArmed = false
			engine.OnLockDelayExpired()
			drain()
			if delta := engine.TotalLinesCleared() - prevLines; delta > 0 {
				result.clears[delta]++
				prevLines = engine.TotalLinesCleared()
			}
		} else if gravityArmed {
			engine.OnGravityTick()
			drain()
		}
	}

	result.elapsed = time.Since(start)
	result.score = engine.Score()
	result.lines = engine.TotalLinesCleared()
	result.level = engine.Level()
	result.finished = over
	return result
}

func histAdd(m *intmap.Map[int64, int64], key int64) {
	v, _ := m.Get(key)
	m.Put(key, v+1)
}
