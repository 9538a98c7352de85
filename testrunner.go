package thicket

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Target string  `json:"target,omitempty"`
	Button string  `json:"button,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Delta  float64 `json:"delta,omitempty"`
	Key    int     `json:"key,omitempty"`
	Text   string  `json:"text,omitempty"`
	Ticks  int     `json:"ticks,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var testActions = map[string]bool{
	"move": true, "press": true, "release": true, "click": true, "drag": true,
	"scroll": true, "key": true, "text": true, "focus": true, "blur": true, "wait": true,
}

// TestRunner sequences injected input across ticks for scripted interaction
// tests. Attach to a Root via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	errs      []error
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Root via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !testActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if _, err := parseButton(st.Button); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func parseButton(s string) (MouseButton, error) {
	switch s {
	case "", "left":
		return MouseButtonLeft, nil
	case "right":
		return MouseButtonRight, nil
	case "middle":
		return MouseButtonMiddle, nil
	}
	return 0, fmt.Errorf("unknown button %q", s)
}

// SetTestRunner attaches a TestRunner to the root. The runner's step method
// is called from Root.Update before input is processed each tick.
func (r *Root) SetTestRunner(runner *TestRunner) {
	r.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (t *TestRunner) Done() bool {
	return t.done
}

// Errors returns the problems met while running the script, such as focus
// steps naming controls that do not exist.
func (t *TestRunner) Errors() []error {
	return t.errs
}

// step advances the test runner by one tick. Called from Root.Update.
func (t *TestRunner) step(r *Root) {
	if t.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(r.injectQueue) > 0 {
		return
	}
	// Count down wait ticks.
	if t.waitCount > 0 {
		t.waitCount--
		return
	}
	if t.cursor >= len(t.steps) {
		t.done = true
		return
	}

	st := t.steps[t.cursor]
	t.cursor++
	btn, _ := parseButton(st.Button)

	switch st.Action {
	case "move":
		r.InjectMove(st.X, st.Y)
	case "press":
		r.InjectPress(st.X, st.Y, btn)
	case "release":
		r.InjectRelease(st.X, st.Y, btn)
	case "click":
		r.InjectClick(st.X, st.Y, btn)
	case "drag":
		r.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Ticks)
	case "scroll":
		r.InjectScroll(st.Delta)
	case "key":
		r.InjectKey(Key(st.Key), 0)
	case "text":
		r.InjectText(st.Text)
	case "focus":
		c := r.FindByName(st.Target)
		if c == nil {
			t.errs = append(t.errs, fmt.Errorf("step %d: no control named %q", t.cursor-1, st.Target))
		} else if !c.TryFocus() {
			t.errs = append(t.errs, fmt.Errorf("step %d: control %q refused focus", t.cursor-1, st.Target))
		}
	case "blur":
		r.focus.BlurFocused()
	case "wait":
		if st.Ticks > 0 {
			t.waitCount = st.Ticks - 1 // this tick counts as one
		}
	}

	// Check if we've reached the end after executing.
	if t.cursor >= len(t.steps) && t.waitCount == 0 && len(r.injectQueue) == 0 {
		t.done = true
	}
}
