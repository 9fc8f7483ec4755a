package tetris

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// useConfig points the package at a temporary config file for one test.
func useConfig(t *testing.T, yaml string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	SetConfigPath(path)
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  30,
		TickRate: 60,
		Seed:     seed,
	}
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameDeterminism(t *testing.T) {
	useConfig(t, "gravity:\n  level: 5\n")

	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		switch {
		case i%40 == 5:
			inputs[i] = input(core.ActionRotate)
		case i%40 == 10:
			inputs[i] = input(core.ActionLeft)
		case i%40 == 15:
			inputs[i] = input(core.ActionHold)
		case i%40 == 30:
			inputs[i] = input(core.ActionDrop)
		default:
			inputs[i] = input()
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testRuntime(12345))
		for _, in := range inputs {
			if res := g.Step(in); res.State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Locked != snap2.Locked {
		t.Errorf("runs differ: score %d/%d locked %d/%d", snap1.Score, snap2.Score, snap1.Locked, snap2.Locked)
	}
	if snap1.Locked == 0 {
		t.Error("expected some pieces to lock during the run")
	}
}

func TestGameGravity(t *testing.T) {
	useConfig(t, "difficulty:\n  enabled: false\n")

	g := New()
	g.Reset(testRuntime(1))

	// Level 1 at 60 ticks per second falls once per 60 ticks.
	for i := 0; i < 59; i++ {
		g.Step(input())
	}
	if row := g.Snapshot().Row; row != 0 {
		t.Fatalf("piece fell early: row %d after 59 ticks", row)
	}
	g.Step(input())
	if row := g.Snapshot().Row; row != 1 {
		t.Errorf("expected row 1 after 60 ticks, got %d", row)
	}
	if g.State().Score != 0 {
		t.Error("gravity should not award points")
	}
}

func TestGamePause(t *testing.T) {
	useConfig(t, "gravity:\n  level: 15\n")

	g := New()
	g.Reset(testRuntime(2))

	g.Step(input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}
	before := g.Snapshot()
	for i := 0; i < 100; i++ {
		g.Step(input(core.ActionDrop))
	}
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("game advanced while paused")
	}

	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestGameLineClearFlash(t *testing.T) {
	useConfig(t, "board:\n  clear_flash_ms: 300\n")

	g := New()
	g.Reset(testRuntime(7))

	// Fill the bottom row except where the active piece will land.
	board := g.ctrl.Board()
	grid := board.Grid()
	bottom := board.Config().Rows - 1
	for c := range grid[bottom] {
		grid[bottom][c] = engine.ObstacleCode
	}
	for _, cell := range board.GhostCells() {
		if cell.Row == bottom {
			grid[bottom][cell.Col] = engine.Empty
		}
	}
	board.SetGrid(grid)

	res := g.Step(input(core.ActionDrop))
	if !res.Locked || res.Cleared != 1 {
		t.Fatalf("expected lock with 1 cleared row, got locked=%v cleared=%d", res.Locked, res.Cleared)
	}
	if g.state != StateClearing || g.flash == nil {
		t.Fatalf("expected clearing state, got %s", g.state)
	}
	if res.State.Lines != 1 || res.State.Score < 50 {
		t.Errorf("lines=%d score=%d after a single clear", res.State.Lines, res.State.Score)
	}

	// 300ms at 60 ticks per second.
	for i := 0; i < 18; i++ {
		g.Step(input())
	}
	if g.state != StatePlaying || g.flash != nil {
		t.Errorf("flash did not finish: state=%s", g.state)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	useConfig(t, "board:\n  clear_flash_ms: 0\n")

	g := New()
	g.Reset(testRuntime(3))

	board := g.ctrl.Board()
	grid := board.Grid()
	for r := range grid {
		for c := 1; c < len(grid[r]); c++ {
			grid[r][c] = engine.ObstacleCode
		}
	}
	board.SetGrid(grid)

	res := g.Step(input(core.ActionDrop))
	if !res.State.GameOver {
		t.Fatal("expected game over on a filled board")
	}

	// Input other than restart is ignored.
	snap := g.Snapshot()
	g.Step(input(core.ActionLeft, core.ActionDrop))
	if after := g.Snapshot(); after.Hash() != snap.Hash() {
		t.Error("game changed after game over")
	}

	res = g.Step(input(core.ActionRestart))
	if res.State.GameOver || res.State.Score != 0 || res.State.Lines != 0 {
		t.Errorf("restart did not reset: %+v", res.State)
	}
}

func TestGameSoftDropScores(t *testing.T) {
	useConfig(t, "scoring:\n  soft_drop: 3\n")

	g := New()
	g.Reset(testRuntime(4))
	g.Step(input(core.ActionDown))
	if got := g.State().Score; got != 3 {
		t.Errorf("score after one soft drop = %d, want 3", got)
	}
}

func TestObstacleMode(t *testing.T) {
	useConfig(t, "gravity:\n  level: 1\n")

	g := NewObstacles()
	g.Reset(testRuntime(9))

	count := 0
	for _, v := range g.Snapshot().Grid {
		if v == engine.ObstacleCode {
			count++
		}
	}
	lo, hi := engine.ObstacleRange(1)
	if count < lo || count > hi {
		t.Errorf("obstacle count = %d, want %d..%d", count, lo, hi)
	}

	classic := New()
	classic.Reset(testRuntime(9))
	for _, v := range classic.Snapshot().Grid {
		if v == engine.ObstacleCode {
			t.Fatal("classic mode should start with an empty board")
		}
	}
	if g.Snapshot().Active != classic.Snapshot().Active {
		t.Error("obstacles should not change the piece sequence")
	}
}

func TestDifficultyPreset(t *testing.T) {
	useConfig(t, "gravity:\n  level: 1\n")
	SetDifficultyPreset("hard")

	g := New()
	g.Reset(testRuntime(5))
	if g.State().Level != 10 {
		t.Errorf("level = %d, want 10", g.State().Level)
	}

	SetDifficultyPreset("nonsense")
	g.Reset(testRuntime(5))
	if g.State().Level != 1 {
		t.Errorf("unknown preset should keep the configured level, got %d", g.State().Level)
	}
}

func TestPerGameDifficulty(t *testing.T) {
	useConfig(t, "gravity:\n  level: 1\n")
	SetDifficultyPreset("normal")

	g := New()
	g.SetDifficulty("extreme")
	g.Reset(testRuntime(5))
	if g.State().Level != 15 {
		t.Errorf("level = %d, want 15", g.State().Level)
	}

	other := New()
	other.Reset(testRuntime(5))
	if other.State().Level != 5 {
		t.Errorf("package preset not applied, level = %d", other.State().Level)
	}
}

func TestRender(t *testing.T) {
	useConfig(t, "board:\n  preview: 3\n")

	g := New()
	g.Reset(testRuntime(6))
	g.Step(input(core.ActionHold))

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"HOLD", "NEXT", "SCORE", "LINES", "LEVEL", "BEST", string(BlockGlyph)} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q", want)
		}
	}

	g.Step(input(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}
}

func TestRenderTooSmall(t *testing.T) {
	useConfig(t, "board:\n  preview: 3\n")

	g := New()
	rt := testRuntime(1)
	rt.ScreenW, rt.ScreenH = 30, 10
	g.Reset(rt)

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected size warning")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	useConfig(t, "board:\n  preview: 3\n")

	g := New()
	rt := testRuntime(8)
	rt.ScreenW, rt.ScreenH = 30, 10
	g.Reset(rt)
	g.Step(input(core.ActionDown))
	before := g.Snapshot()

	g.Resize(80, 30)
	if after := g.Snapshot(); after.Hash() != before.Hash() {
		t.Error("resize changed the game state")
	}
	screen := core.NewScreen(80, 30)
	g.Render(screen)
	if strings.Contains(screen.String(), "Window too small") {
		t.Error("layout not recomputed after resize")
	}
}

func TestObstaclesNeverUnderSpawnedPiece(t *testing.T) {
	useConfig(t, "board:\n  hidden_rows: 0\n")

	for seed := int64(1); seed <= 300; seed++ {
		g := NewObstacles()
		g.Reset(testRuntime(seed))

		snap := g.Snapshot()
		overlap := false
		for _, c := range g.ctrl.View().ActiveCells() {
			if snap.Grid[c.Row*snap.Cols+c.Col] != engine.Empty {
				overlap = true
			}
		}
		if overlap && !g.State().GameOver {
			t.Fatalf("seed %d: active piece overlaps an obstacle without game over", seed)
		}
	}
}

func TestActivePieceVisibleOnFirstFrame(t *testing.T) {
	useConfig(t, "board:\n  clear_flash_ms: 0\n")

	for seed := int64(1); seed <= 20; seed++ {
		g := New()
		g.Reset(testRuntime(seed))

		screen := core.NewScreen(80, 30)
		g.Render(screen)
		view := g.ctrl.View()
		color := pieceColors[int(view.Active)]

		visible := 0
		for _, c := range view.ActiveCells() {
			x, y, ok := g.cellOrigin(c.Row, c.Col)
			if ok && screen.GetCell(x, y) == (core.Cell{Rune: BlockGlyph, Color: color}) {
				visible++
			}
		}
		if visible == 0 {
			t.Fatalf("seed %d: %s piece not drawn on the first frame", seed, view.Active)
		}
	}
}

func TestRecordsShown(t *testing.T) {
	useConfig(t, "board:\n  clear_flash_ms: 0\n")

	g := New()
	g.Reset(testRuntime(3))
	g.SetBest(4200)

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	if !strings.Contains(screen.String(), "4200") {
		t.Error("best score not shown")
	}

	board := g.ctrl.Board()
	grid := board.Grid()
	for r := range grid {
		for c := 1; c < len(grid[r]); c++ {
			grid[r][c] = engine.ObstacleCode
		}
	}
	board.SetGrid(grid)
	g.Step(input(core.ActionDrop))
	g.SetRank(2)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Rank #2") {
		t.Error("rank missing from the game over box")
	}

	g.Step(input(core.ActionRestart))
	g.Render(screen)
	if strings.Contains(screen.String(), "Rank #2") {
		t.Error("rank survived a restart")
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDClassic, IDObstacles} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q) returned game %q", id, g.ID())
		}
	}
}
