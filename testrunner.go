package shapedraw

import (
	"encoding/json"
	"fmt"

	"github.com/yohamta/donburi"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	ID     uint64  `json:"id,omitempty"`
	Phase  string  `json:"phase,omitempty"`
	Height float64 `json:"height,omitempty"`
	// Despawn selects removal for the "board" action.
	Despawn bool `json:"despawn,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var touchPhases = map[string]TouchPhase{
	"started":   TouchStarted,
	"moved":     TouchMoved,
	"ended":     TouchEnded,
	"cancelled": TouchCancelled,
}

// TestRunner sequences injected input, lifecycle requests and screenshots
// across ticks for automated testing. Attach to a Plugin via SetTestRunner.
//
// Actions: press, move, release, drag, touch, enable, disable, redraw (the
// most recently spawned shape), board, screenshot, wait.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool

	lastSpawned    donburi.Entity
	hasLastSpawned bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Plugin via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if st.Action == "touch" {
			if _, ok := touchPhases[st.Phase]; !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown touch phase %q", i, st.Phase)
			}
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the plugin. The runner's step method
// is called from Update before input is read each tick.
func (p *Plugin) SetTestRunner(runner *TestRunner) {
	p.testRunner = runner
	if runner == nil {
		return
	}
	p.OnDrawShape(func(ev DrawShapeEvent) {
		if ev.Kind == ShapeSpawned {
			runner.lastSpawned = ev.Entity
			runner.hasLastSpawned = true
		}
	})
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one tick. Called from Plugin.Update.
func (r *TestRunner) step(p *Plugin) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(p.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		p.Screenshot(st.Label)
	case "press":
		p.InjectPress(st.X, st.Y)
	case "move":
		p.InjectMove(st.X, st.Y)
	case "release":
		p.InjectRelease(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		p.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "touch":
		p.InjectTouch(st.ID, st.X, st.Y, touchPhases[st.Phase])
	case "enable":
		p.Request(EnableDrawing)
	case "disable":
		p.Request(DisableDrawing)
	case "redraw":
		if r.hasLastSpawned {
			p.Request(RedrawShape(r.lastSpawned))
		}
	case "board":
		if st.Despawn {
			p.RequestDrawingboard(DespawnDrawingboard)
		} else {
			p.RequestDrawingboard(SpawnDrawingboard(st.Height))
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(p.injectQueue) == 0 {
		r.done = true
	}
}
