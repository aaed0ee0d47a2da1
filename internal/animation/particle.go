// Package animation holds declarative visual descriptors. The engine core
// never interprets them; they ride along on effects for a renderer to
// consume. Nothing in here carries gameplay meaning.
package animation

// Offset is a position offset in tiles relative to the parent entity
type Offset struct {
	X float64
	Y float64
}

// Size is a particle dimension in tiles
type Size struct {
	W float64
	H float64
}

// ParticleGenerator describes a particle emitter parented to an actor for
// the lifetime of the effect it is attached to.
type ParticleGenerator struct {
	// ParentID is the actor the emitter follows
	ParentID string

	// Image is the particle image resource ID
	Image string

	// Position is a fixed offset from the parent's origin
	Position Offset

	// ParticleSize is the fixed size of each emitted particle
	ParticleSize Size

	// GenRate is particles emitted per second
	GenRate float64

	// ParticleDurationSecs is how long each particle lives
	ParticleDurationSecs float64
}

// NewParticleGenerator creates a particle generator parented to the given
// actor with the given particle image
func NewParticleGenerator(parentID, image string) *ParticleGenerator {
	return &ParticleGenerator{
		ParentID: parentID,
		Image:    image,
		GenRate:  1.0,
	}
}

// SetPosition sets the fixed emitter offset
func (g *ParticleGenerator) SetPosition(x, y float64) *ParticleGenerator {
	g.Position = Offset{X: x, Y: y}
	return g
}

// SetParticleSize sets the fixed particle size
func (g *ParticleGenerator) SetParticleSize(w, h float64) *ParticleGenerator {
	g.ParticleSize = Size{W: w, H: h}
	return g
}

// SetGenRate sets the emission rate in particles per second
func (g *ParticleGenerator) SetGenRate(rate float64) *ParticleGenerator {
	g.GenRate = rate
	return g
}

// SetParticleDuration sets the lifetime of each particle in seconds
func (g *ParticleGenerator) SetParticleDuration(secs float64) *ParticleGenerator {
	g.ParticleDurationSecs = secs
	return g
}
