// Package world holds the explicit simulation state: light sources and
// vehicles stored in an ECS world, plus the operations the front-ends call.
package world

import (
	"math"
	"math/rand"
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/braitenberg/components"
	"github.com/pthm-cable/braitenberg/config"
	"github.com/pthm-cable/braitenberg/systems"
)

// Source is a read-only view of a light source.
type Source struct {
	Seq       uint64
	X, Y      float64
	Radius    float64
	Intensity float64
}

// Observer is notified after each mutation of the world.
// Calls happen on the goroutine that mutated the world.
type Observer interface {
	SourceAdded(s Source)
	SourceEvicted(s Source)
	BehaviorChanged(b components.Behavior, vehicles int)
	Reset()
}

// World is the complete simulation state.
type World struct {
	ecs    *ecs.World
	rng    *rand.Rand
	params systems.Params

	maxSources      int
	vehicleCount    int
	sourceIntensity float64
	sourceRadius    float64
	defaultBehavior components.Behavior

	vehicleMapper *ecs.Map5[
		components.Position,
		components.Heading,
		components.Drive,
		components.Stimulus,
		components.Vehicle,
	]
	vehicleFilter *ecs.Filter5[
		components.Position,
		components.Heading,
		components.Drive,
		components.Stimulus,
		components.Vehicle,
	]
	lightMapper *ecs.Map2[components.Position, components.Light]
	lightFilter *ecs.Filter2[components.Position, components.Light]

	vehicleSystem *systems.VehicleSystem
	lightSystem   *systems.LightSystem
	lightBuf      []systems.LightSample

	behavior components.Behavior
	tick     int64
	nextSeq  uint64
	nextID   uint32

	observers []Observer
}

// New creates an empty world sized from cfg. Call Init to populate it.
func New(cfg *config.Config, rng *rand.Rand) *World {
	w := ecs.NewWorld()

	wd := &World{
		ecs:             w,
		rng:             rng,
		params:          systems.ParamsFromConfig(cfg),
		maxSources:      cfg.Sources.MaxCount,
		vehicleCount:    cfg.Population.Vehicles,
		sourceIntensity: cfg.Sources.Intensity,
		sourceRadius:    cfg.Sources.Radius,
		defaultBehavior: cfg.Population.DefaultBehavior,
		vehicleMapper: ecs.NewMap5[
			components.Position,
			components.Heading,
			components.Drive,
			components.Stimulus,
			components.Vehicle,
		](w),
		vehicleFilter: ecs.NewFilter5[
			components.Position,
			components.Heading,
			components.Drive,
			components.Stimulus,
			components.Vehicle,
		](w),
		lightMapper:   ecs.NewMap2[components.Position, components.Light](w),
		lightFilter:   ecs.NewFilter2[components.Position, components.Light](w),
		vehicleSystem: systems.NewVehicleSystem(w),
		lightSystem:   systems.NewLightSystem(w),
	}

	return wd
}

// Init places one light at the centre and creates the default population.
func (wd *World) Init() {
	bounds := wd.params.Bounds
	wd.notifyAdded(wd.spawnLight(bounds.Width/2, bounds.Height/2))
	wd.SetBehavior(wd.defaultBehavior)
}

// AddObserver registers o for mutation notifications.
func (wd *World) AddObserver(o Observer) {
	wd.observers = append(wd.observers, o)
}

// Tick advances every vehicle by one step against the current lights.
func (wd *World) Tick() {
	wd.lightBuf = wd.lightSystem.Snapshot(wd.lightBuf)
	wd.vehicleSystem.Update(wd.lightBuf, wd.params)
	wd.tick++
}

// AddSource places a light at (x, y). When that pushes the count past the
// limit, the oldest lights are removed. Returns the number removed.
func (wd *World) AddSource(x, y float64) int {
	wd.notifyAdded(wd.spawnLight(x, y))

	evicted := 0
	for {
		lights := wd.sourceEntities()
		if len(lights) <= wd.maxSources {
			break
		}
		oldest := lights[0]
		wd.ecs.RemoveEntity(oldest.entity)
		evicted++
		for _, o := range wd.observers {
			o.SourceEvicted(oldest.view)
		}
	}

	return evicted
}

// SetBehavior discards every vehicle and creates a fresh population, all
// wired as b. Positions and headings are uniformly random.
// b must be a valid behavior.
func (wd *World) SetBehavior(b components.Behavior) {
	var toRemove []ecs.Entity
	query := wd.vehicleFilter.Query()
	for query.Next() {
		toRemove = append(toRemove, query.Entity())
	}
	for _, e := range toRemove {
		wd.ecs.RemoveEntity(e)
	}

	bounds := wd.params.Bounds
	for i := 0; i < wd.vehicleCount; i++ {
		x := wd.rng.Float64() * bounds.Width
		y := wd.rng.Float64() * bounds.Height
		heading := wd.rng.Float64() * 2 * math.Pi
		wd.spawnVehicle(x, y, heading, b)
	}

	wd.behavior = b
	for _, o := range wd.observers {
		o.BehaviorChanged(b, wd.vehicleCount)
	}
}

// Reset replaces all lights with a single one at the centre and recreates
// the population with the default behavior.
func (wd *World) Reset() {
	var toRemove []ecs.Entity
	query := wd.lightFilter.Query()
	for query.Next() {
		toRemove = append(toRemove, query.Entity())
	}
	for _, e := range toRemove {
		wd.ecs.RemoveEntity(e)
	}

	wd.Init()

	for _, o := range wd.observers {
		o.Reset()
	}
}

// Sources returns the lights in insertion order.
func (wd *World) Sources() []Source {
	lights := wd.sourceEntities()
	out := make([]Source, len(lights))
	for i, l := range lights {
		out[i] = l.view
	}
	return out
}

// Lights returns the lights as sensor samples in insertion order.
func (wd *World) Lights() []systems.LightSample {
	return wd.lightSystem.Snapshot(nil)
}

// Vehicles returns every vehicle ordered by ID.
func (wd *World) Vehicles() []systems.VehicleState {
	var out []systems.VehicleState
	query := wd.vehicleFilter.Query()
	for query.Next() {
		pos, heading, drive, stim, veh := query.Get()
		out = append(out, systems.VehicleState{
			Vehicle:  *veh,
			Position: *pos,
			Heading:  *heading,
			Drive:    *drive,
			Stimulus: *stim,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Vehicle.ID < out[j].Vehicle.ID })
	return out
}

// Behavior returns the behavior of the current population.
func (wd *World) Behavior() components.Behavior { return wd.behavior }

// TickCount returns the number of ticks run so far.
func (wd *World) TickCount() int64 { return wd.tick }

// Params returns the update constants.
func (wd *World) Params() systems.Params { return wd.params }

// Width returns the world width.
func (wd *World) Width() float64 { return wd.params.Bounds.Width }

// Height returns the world height.
func (wd *World) Height() float64 { return wd.params.Bounds.Height }

// MaxSources returns the light limit.
func (wd *World) MaxSources() int { return wd.maxSources }

func (wd *World) spawnVehicle(x, y, heading float64, b components.Behavior) ecs.Entity {
	pos := components.Position{X: x, Y: y}
	rot := components.Heading{Angle: heading}
	drive := components.Drive{}
	stim := components.Stimulus{}
	veh := components.Vehicle{ID: wd.nextID, Behavior: b}
	wd.nextID++

	return wd.vehicleMapper.NewEntity(&pos, &rot, &drive, &stim, &veh)
}

func (wd *World) spawnLight(x, y float64) Source {
	pos := components.Position{X: x, Y: y}
	light := components.Light{
		Seq:       wd.nextSeq,
		Radius:    wd.sourceRadius,
		Intensity: wd.sourceIntensity,
	}
	wd.nextSeq++
	wd.lightMapper.NewEntity(&pos, &light)

	return sourceView(pos, light)
}

func (wd *World) notifyAdded(s Source) {
	for _, o := range wd.observers {
		o.SourceAdded(s)
	}
}

type lightEntity struct {
	entity ecs.Entity
	view   Source
}

// sourceEntities returns light entities sorted oldest first.
func (wd *World) sourceEntities() []lightEntity {
	var out []lightEntity
	query := wd.lightFilter.Query()
	for query.Next() {
		pos, light := query.Get()
		out = append(out, lightEntity{entity: query.Entity(), view: sourceView(*pos, *light)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].view.Seq < out[j].view.Seq })
	return out
}

func sourceView(pos components.Position, light components.Light) Source {
	return Source{
		Seq:       light.Seq,
		X:         pos.X,
		Y:         pos.Y,
		Radius:    light.Radius,
		Intensity: light.Intensity,
	}
}
