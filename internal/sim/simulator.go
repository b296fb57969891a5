package sim

import (
	"context"
	"time"

	"github.com/san-kum/dyeflow/internal/dye"
	"github.com/san-kum/dyeflow/internal/field"
)

const (
	// timeSpan is the simulated time window; it is fixed regardless of the
	// step count, so motion frequency scales with the number of frames.
	timeSpan = 6.0

	// smoothSigma softens the velocity field before advection.
	smoothSigma = 1.0

	// blendKeep leaks the dye back toward its initial state each step,
	// keeping the palette from washing out or diverging over long runs.
	blendKeep = 0.995
)

// Simulator owns the per-frame pipeline: velocity synthesis, smoothing,
// semi-Lagrangian advection of the dye, blending toward the base dye, and
// conversion to a pixel buffer. All buffers are allocated once and reused;
// a Simulator is not safe for concurrent use.
type Simulator struct {
	cfg     Config
	synth   *field.Synthesizer
	base    *field.Field
	dye     *field.Field
	next    *field.Field
	vel     *field.Field
	velTmp  *field.Field
	pix     []uint8
	step    int
	metrics []Metric
}

// New allocates a simulator for cfg, normalizing degenerate values and
// synthesizing the base dye field.
func New(cfg Config) *Simulator {
	if cfg.Resolution < 2 {
		cfg.Resolution = 2
	}
	if cfg.Steps < 1 {
		cfg.Steps = 1
	}
	if cfg.Fps < 1 {
		cfg.Fps = 1
	}
	if cfg.Seed == 0 {
		cfg.Seed = dye.DefaultSeed
	}

	n := cfg.Resolution
	base := dye.NewBase(n, cfg.Seed, cfg.Palette)
	return &Simulator{
		cfg:    cfg,
		synth:  field.NewSynthesizer(n),
		base:   base,
		dye:    base.Clone(),
		next:   field.New(n, n, 3),
		vel:    field.New(n, n, 2),
		velTmp: field.New(n, n, 2),
		pix:    make([]uint8, n*n*3),
	}
}

func (s *Simulator) AddMetric(m Metric) { s.metrics = append(s.metrics, m) }

func (s *Simulator) Config() Config     { return s.cfg }
func (s *Simulator) Base() *field.Field { return s.base }
func (s *Simulator) StepCount() int     { return s.step }
func (s *Simulator) Done() bool         { return s.step >= s.cfg.Steps }

// FrameDelay is the target display duration of one frame.
func (s *Simulator) FrameDelay() time.Duration {
	return time.Second / time.Duration(s.cfg.Fps)
}

// Step advances the simulation by one frame and returns the rendered pixel
// buffer. The buffer is owned by the simulator and overwritten on the next
// call.
func (s *Simulator) Step() []uint8 {
	t := float64(s.step) / float64(s.cfg.Steps) * timeSpan

	s.synth.Velocity(s.vel, t, s.cfg.Strength)
	field.Smooth(s.vel, s.velTmp, smoothSigma)
	field.Advect(s.next, s.dye, s.vel, s.cfg.Dt)

	for i, v := range s.next.Data {
		s.dye.Data[i] = blendKeep*v + (1-blendKeep)*s.base.Data[i]
	}

	for _, m := range s.metrics {
		m.Observe(s.dye, s.vel, t)
	}

	for i, v := range s.dye.Data {
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		s.pix[i] = uint8(v)
	}

	s.step++
	return s.pix
}

// Run executes the remaining steps, handing each frame to sink. It stops
// early when the sink declines a frame or ctx is canceled (both checked
// between steps, never mid-step) and returns the number of frames produced.
func (s *Simulator) Run(ctx context.Context, sink FrameSink) (int, error) {
	produced := 0
	delay := s.FrameDelay()

	for _, m := range s.metrics {
		m.Reset()
	}

	for !s.Done() {
		select {
		case <-ctx.Done():
			return produced, ctx.Err()
		default:
		}

		pix := s.Step()
		produced++
		if sink != nil && !sink.Accept(pix, delay) {
			break
		}
	}
	return produced, nil
}

// Reset restores the initial dye state so the run can be replayed.
func (s *Simulator) Reset() {
	copy(s.dye.Data, s.base.Data)
	s.step = 0
	for _, m := range s.metrics {
		m.Reset()
	}
}

// MetricValues reports the final value of every registered metric.
func (s *Simulator) MetricValues() map[string]float64 {
	if len(s.metrics) == 0 {
		return nil
	}
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}
