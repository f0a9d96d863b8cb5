package systems

import (
	"sort"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/braitenberg/components"
)

// VehicleState is a vehicle detached from the ECS world.
type VehicleState struct {
	Vehicle  components.Vehicle
	Position components.Position
	Heading  components.Heading
	Drive    components.Drive
	Stimulus components.Stimulus
}

// StepVehicle runs one tick for a single vehicle: sense, map to wheels,
// integrate, wrap. It reads only the lights, never other vehicles.
func StepVehicle(
	pos *components.Position,
	heading *components.Heading,
	drive *components.Drive,
	stim *components.Stimulus,
	behavior components.Behavior,
	lights []LightSample,
	p Params,
) {
	*stim = ComputeStimulus(*pos, heading.Angle, lights, p)
	*drive = WheelSpeeds(behavior, *stim, p)
	Integrate(pos, heading, *drive, p)
	WrapPosition(pos, p.Bounds)
}

// Tick advances every vehicle by one step and returns the new states.
// The input slice is not modified.
func Tick(lights []LightSample, vehicles []VehicleState, p Params) []VehicleState {
	out := make([]VehicleState, len(vehicles))
	copy(out, vehicles)
	for i := range out {
		v := &out[i]
		StepVehicle(&v.Position, &v.Heading, &v.Drive, &v.Stimulus, v.Vehicle.Behavior, lights, p)
	}
	return out
}

// VehicleSystem steps every vehicle entity in an ECS world.
type VehicleSystem struct {
	filter *ecs.Filter5[
		components.Position,
		components.Heading,
		components.Drive,
		components.Stimulus,
		components.Vehicle,
	]
}

// NewVehicleSystem creates a vehicle system bound to a world.
func NewVehicleSystem(w *ecs.World) *VehicleSystem {
	return &VehicleSystem{
		filter: ecs.NewFilter5[
			components.Position,
			components.Heading,
			components.Drive,
			components.Stimulus,
			components.Vehicle,
		](w),
	}
}

// Update steps all vehicles against the given light snapshot.
func (s *VehicleSystem) Update(lights []LightSample, p Params) {
	query := s.filter.Query()
	for query.Next() {
		pos, heading, drive, stim, veh := query.Get()
		StepVehicle(pos, heading, drive, stim, veh.Behavior, lights, p)
	}
}

// LightSystem collects light entities into sensor samples.
type LightSystem struct {
	filter *ecs.Filter2[components.Position, components.Light]
	seqs   []uint64
}

// NewLightSystem creates a light system bound to a world.
func NewLightSystem(w *ecs.World) *LightSystem {
	return &LightSystem{
		filter: ecs.NewFilter2[components.Position, components.Light](w),
	}
}

// Snapshot appends every light to buf in insertion order and returns it.
func (s *LightSystem) Snapshot(buf []LightSample) []LightSample {
	buf = buf[:0]
	s.seqs = s.seqs[:0]

	query := s.filter.Query()
	for query.Next() {
		pos, light := query.Get()
		buf = append(buf, LightSample{
			Pos:       r2.Vec{X: pos.X, Y: pos.Y},
			Intensity: light.Intensity,
		})
		s.seqs = append(s.seqs, light.Seq)
	}

	sort.Sort(bySeq{samples: buf, seqs: s.seqs})
	return buf
}

// bySeq sorts samples alongside their sequence numbers.
type bySeq struct {
	samples []LightSample
	seqs    []uint64
}

func (b bySeq) Len() int           { return len(b.samples) }
func (b bySeq) Less(i, j int) bool { return b.seqs[i] < b.seqs[j] }
func (b bySeq) Swap(i, j int) {
	b.samples[i], b.samples[j] = b.samples[j], b.samples[i]
	b.seqs[i], b.seqs[j] = b.seqs[j], b.seqs[i]
}
