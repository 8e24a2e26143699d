package game

import (
	"log/slog"
	"time"

	"github.com/iburimskiy/tri-rot-bouncy/internal/anim"
	"github.com/iburimskiy/tri-rot-bouncy/internal/config"
	"github.com/iburimskiy/tri-rot-bouncy/internal/render"
)

// SettleFunc is told which node settled and at what value.
type SettleFunc func(index int, value float64)

// Scene owns the chain, the driver and the renderer. The host's frame
// scheduler is the only outside capability it holds.
type Scene struct {
	chain    *anim.Chain
	driver   *anim.Driver
	renderer *render.Renderer
	onSettle SettleFunc
	log      *slog.Logger
}

// NewScene builds the fixed chain. Frames are requested from sched delay apart.
func NewScene(sched anim.Scheduler, delay time.Duration, log *slog.Logger) *Scene {
	log = anim.OrNop(log)
	return &Scene{
		chain:    anim.NewChain(config.NodeCount, config.StepRate),
		driver:   anim.NewDriver(sched, delay, log),
		renderer: render.New(render.DefaultPalette()),
		log:      log,
	}
}

// OnSettle sets the hook run after every completed step.
func (s *Scene) OnSettle(fn SettleFunc) { s.onSettle = fn }

func (s *Scene) Chain() *anim.Chain   { return s.chain }
func (s *Scene) Driver() *anim.Driver { return s.driver }

// Draw clears the surface and draws every node.
func (s *Scene) Draw(surf render.Surface) {
	s.renderer.Clear(surf)
	s.chain.Draw(s.renderer.On(surf))
}

// Advance runs one update when the driver is active. A settled step stops
// the driver until the next tap.
func (s *Scene) Advance() anim.AdvanceResult {
	if !s.driver.Tick() {
		return anim.AdvanceResult{}
	}
	idx := s.chain.Current()
	res := s.chain.Update()
	if !res.Settled() {
		return res
	}
	s.driver.Stop()
	s.log.Info("step settled", "node", idx, "value", res.Value, "next", s.chain.Current(), "direction", s.chain.Direction())
	if s.onSettle != nil {
		s.onSettle(idx, res.Value)
	}
	return res
}

// Render is Draw followed by Advance, for hosts that deliver drawing and
// updating through one callback. Game calls the two halves separately.
func (s *Scene) Render(surf render.Surface) anim.AdvanceResult {
	s.Draw(surf)
	return s.Advance()
}

// HandleTapDown starts the current node's step. Taps while it is still
// moving are dropped.
func (s *Scene) HandleTapDown() bool {
	if !s.chain.BeginStep() {
		s.log.Debug("tap ignored", "node", s.chain.Current())
		return false
	}
	s.log.Debug("tap", "node", s.chain.Current())
	s.driver.Start()
	return true
}
