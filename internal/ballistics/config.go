package ballistics

// LayerMask selects which collider layers a ray query may hit.
// Bit n set means layer n is included.
type LayerMask uint32

// AllLayers matches every layer.
const AllLayers LayerMask = ^LayerMask(0)

// LayerBit returns the mask containing only the given layer.
// Layers outside [0, 31] produce an empty mask.
func LayerBit(layer int) LayerMask {
	if layer < 0 || layer > 31 {
		return 0
	}
	return LayerMask(1) << uint(layer)
}

// Has reports whether the mask includes the given layer.
func (m LayerMask) Has(layer int) bool {
	bit := LayerBit(layer)
	return bit != 0 && m&bit != 0
}

// Config holds the per-projectile simulation settings.
type Config struct {
	Gravity             Vec3      // Gravity acceleration (m/s²)
	LateralAcceleration Vec3      // Constant extra acceleration such as wind
	UseGroundPlane      bool      // Resolve crossings of the horizontal plane at GroundHeight
	GroundHeight        float64   // Y of the ground plane
	UseRaycastHits      bool      // Cast one ray per step against the RayCaster
	HitMask             LayerMask // Layers the ray may hit
	MaxLifetime         float64   // Seconds before an unresolved projectile expires
}

// DefaultConfig mirrors the stock cannon tuning.
func DefaultConfig() Config {
	return Config{
		Gravity:        V3(0, -9.81, 0),
		UseGroundPlane: true,
		GroundHeight:   0,
		UseRaycastHits: false,
		HitMask:        AllLayers,
		MaxLifetime:    30,
	}
}

// Acceleration returns the total constant acceleration acting on a projectile.
func (c Config) Acceleration() Vec3 {
	return c.Gravity.Add(c.LateralAcceleration)
}
