package panel

import (
	"fmt"
	"math"

	"github.com/wukjhc-create/elta-crm-sub005/pkg/spec"
	"github.com/wukjhc-create/elta-crm-sub005/pkg/tables"
)

// Circuit split limits. A lighting circuit stays near 10 A at 230 V; a socket
// circuit near 16 A and at most 10 outlets.
const (
	lightingCircuitMaxW = 2300.0
	socketCircuitMaxW   = 3680.0
	socketCircuitMaxPts = 10
	rcdSensitivityMA    = 30
)

// breakerCable maps a breaker rating to the cable cross-section installed
// with it on dedicated circuits.
var breakerCable = map[int]float64{
	6: 1.5, 10: 1.5, 13: 2.5, 16: 2.5, 20: 4, 25: 6,
	32: 10, 40: 16, 50: 25, 63: 25, 80: 35, 100: 50,
}

// builder accumulates circuits while tracking the running per-phase load so
// each new circuit balances against everything placed before it.
type builder struct {
	phase      spec.Phase
	phaseLoads [3]float64
	circuits   []CircuitConfig
	notes      []string
}

func newBuilder(phase spec.Phase) *builder {
	return &builder{phase: phase}
}

// add assigns the next position and a phase, then updates the running load.
func (b *builder) add(c CircuitConfig, explicitPhase int) {
	c.Position = len(b.circuits) + 1
	c.CableType = spec.CableNOIKLX

	if b.phase != spec.ThreePhase {
		c.Phase = 1
	} else if explicitPhase >= 1 && explicitPhase <= 3 {
		c.Phase = explicitPhase
	} else {
		least := 0
		for i := 1; i < 3; i++ {
			if b.phaseLoads[i] < b.phaseLoads[least] {
				least = i
			}
		}
		c.Phase = least + 1
	}
	b.phaseLoads[c.Phase-1] += c.LoadW

	b.circuits = append(b.circuits, c)
}

// addRoom partitions one room's loads into circuits.
func (b *builder) addRoom(room spec.Room) {
	var lighting, sockets, heavy, heating, other []spec.LoadEntry

	for _, l := range room.Loads {
		switch l.Category {
		case spec.CategoryLighting:
			lighting = append(lighting, l)
		case spec.CategorySocketOutlet:
			sockets = append(sockets, l)
		case spec.CategoryFixedAppliance, spec.CategoryCooking, spec.CategoryEVCharger, spec.CategoryMotor:
			heavy = append(heavy, l)
		case spec.CategoryHeating:
			heating = append(heating, l)
		case spec.CategoryDataEquipment, spec.CategoryOther:
			other = append(other, l)
		}
	}

	b.addLightingCircuits(room, lighting)
	b.addSocketCircuits(room, sockets)
	for _, l := range heavy {
		b.addDedicatedCircuit(room, l)
	}
	for _, l := range heating {
		b.addHeatingCircuit(room, l)
	}
	for _, l := range other {
		b.add(CircuitConfig{
			Description:  describe(room, l, "general"),
			Breaker:      spec.BreakerMCB,
			RatingA:      16,
			Curve:        spec.CurveB,
			CrossSection: 2.5,
			LoadW:        l.ConnectedPowerW(),
			Category:     l.Category,
			Room:         room.Name,
			Points:       l.Quantity,
		}, l.Phase)
	}
}

// addLightingCircuits splits a room's total lighting load into circuits
// capped near 2.3 kW, distributing load and fixture count evenly.
func (b *builder) addLightingCircuits(room spec.Room, loads []spec.LoadEntry) {
	totalW, points := 0.0, 0
	for _, l := range loads {
		totalW += l.ConnectedPowerW()
		points += l.Quantity
	}
	if totalW == 0 {
		return
	}

	n := int(math.Ceil(totalW / lightingCircuitMaxW))
	for i := 0; i < n; i++ {
		b.add(CircuitConfig{
			Description:  splitDescription(room.Name+" lighting", i, n),
			Breaker:      spec.BreakerMCB,
			RatingA:      10,
			Curve:        spec.CurveB,
			CrossSection: 1.5,
			LoadW:        totalW / float64(n),
			Category:     spec.CategoryLighting,
			Room:         room.Name,
			Points:       splitCount(points, i, n),
		}, 0)
	}
}

// addSocketCircuits splits socket outlets so no circuit carries more than 10
// outlets or 3.68 kW. Wet rooms get RCBO protection directly.
func (b *builder) addSocketCircuits(room spec.Room, loads []spec.LoadEntry) {
	totalW, points := 0.0, 0
	for _, l := range loads {
		totalW += l.ConnectedPowerW()
		points += l.Quantity
	}
	if points == 0 {
		return
	}

	byPoints := int(math.Ceil(float64(points) / socketCircuitMaxPts))
	byPower := int(math.Ceil(totalW / socketCircuitMaxW))
	n := byPoints
	if byPower > n {
		n = byPower
	}

	for i := 0; i < n; i++ {
		c := CircuitConfig{
			Description:  splitDescription(room.Name+" sockets", i, n),
			Breaker:      spec.BreakerMCB,
			RatingA:      16,
			Curve:        spec.CurveB,
			CrossSection: 2.5,
			LoadW:        totalW / float64(n),
			Category:     spec.CategorySocketOutlet,
			Room:         room.Name,
			Points:       splitCount(points, i, n),
		}
		if room.WetRoom {
			c.Breaker = spec.BreakerRCBO
			c.RCDType = spec.RCDTypeA
			c.RCDSensMA = rcdSensitivityMA
		}
		b.add(c, 0)
	}
}

// addDedicatedCircuit creates one circuit for a heavy load, breaker sized to
// the load's own current.
func (b *builder) addDedicatedCircuit(room spec.Room, l spec.LoadEntry) {
	loadW := l.ConnectedPowerW()
	rating := tables.SelectBreakerRating(loadW / spec.SinglePhase.NominalVoltage())

	c := CircuitConfig{
		Description:  describe(room, l, string(l.Category)),
		Breaker:      spec.BreakerMCB,
		RatingA:      rating,
		Curve:        dedicatedCurve(l.Category, rating),
		CrossSection: cableForBreaker(rating),
		LoadW:        loadW,
		Category:     l.Category,
		Room:         room.Name,
	}
	if l.Category == spec.CategoryEVCharger {
		c.Breaker = spec.BreakerRCBO
		c.RCDType = spec.RCDTypeB
		c.RCDSensMA = rcdSensitivityMA
		b.notes = append(b.notes,
			fmt.Sprintf("%s: EV charging circuit requires type B RCD per DS/HD 60364-7-722", c.Description))
	}
	b.add(c, l.Phase)
}

// addHeatingCircuit creates one circuit per heating entry. Wet rooms get
// RCBO protection directly.
func (b *builder) addHeatingCircuit(room spec.Room, l spec.LoadEntry) {
	loadW := l.ConnectedPowerW()
	rating := tables.SelectBreakerRating(loadW / spec.SinglePhase.NominalVoltage())

	c := CircuitConfig{
		Description:  describe(room, l, "heating"),
		Breaker:      spec.BreakerMCB,
		RatingA:      rating,
		Curve:        spec.CurveB,
		CrossSection: cableForBreaker(rating),
		LoadW:        loadW,
		Category:     spec.CategoryHeating,
		Room:         room.Name,
	}
	if room.WetRoom {
		c.Breaker = spec.BreakerRCBO
		c.RCDType = spec.RCDTypeA
		c.RCDSensMA = rcdSensitivityMA
	}
	b.add(c, l.Phase)
}

// dedicatedCurve picks the trip curve for a dedicated circuit: motors and
// high-current appliances have inrush, so they get curve C.
func dedicatedCurve(cat spec.LoadCategory, rating int) spec.Characteristic {
	if cat == spec.CategoryMotor || rating >= 32 {
		return spec.CurveC
	}
	return spec.CurveB
}

// cableForBreaker returns the cross-section installed with a breaker rating,
// falling back to 2.5 mm² for ratings outside the fixed mapping.
func cableForBreaker(rating int) float64 {
	if s, ok := breakerCable[rating]; ok {
		return s
	}
	return 2.5
}

func describe(room spec.Room, l spec.LoadEntry, fallback string) string {
	if l.Description != "" {
		return room.Name + " " + l.Description
	}
	return room.Name + " " + fallback
}

// splitDescription labels the i-th of n circuits, dropping the counter when
// there is only one.
func splitDescription(base string, i, n int) string {
	if n == 1 {
		return base
	}
	return fmt.Sprintf("%s %d/%d", base, i+1, n)
}

// splitCount distributes total points across n circuits, front-loading the
// remainder.
func splitCount(total, i, n int) int {
	per := total / n
	if i < total%n {
		per++
	}
	return per
}
