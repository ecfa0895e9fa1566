package main

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"VoxelSandbox/config"
)

// fractalNoise sums several octaves of opensimplex noise into a terrain
// height at a world column.
func fractalNoise(noise opensimplex.Noise32, x, z int, amplitude float32, octaves int, lacunarity, persistence, scale float32) int {
	val := float32(0)
	x1 := float32(x)
	z1 := float32(z)

	for i := 0; i < octaves; i++ {
		val += noise.Eval2(x1/scale, z1/scale) * amplitude
		x1 *= lacunarity
		z1 *= lacunarity
		amplitude *= persistence
	}
	return int(val)
}

// GenerateTerrain bulk-inserts a heightmapped terrain around the origin:
// grass on top, a few blocks of dirt under it, stone below that. This is
// the host-side seeding of the store; the store itself knows nothing
// about terrain.
func GenerateTerrain(world *VoxelWorld, settings config.TerrainSettings) {
	noise := opensimplex.New32(settings.Seed)
	random := rand.New(rand.NewSource(settings.Seed))

	radius := settings.Radius
	amplitude := float32(settings.Amplitude)

	for x := -radius; x <= radius; x++ {
		for z := -radius; z <= radius; z++ {
			height := fractalNoise(noise, x, z, amplitude, 4, 1.5, 0.5, 100)
			if height < -settings.Amplitude {
				// Octave summing can undershoot the base layer; every
				// column keeps at least its base block.
				height = -settings.Amplitude
			}

			for y := -settings.Amplitude; y <= height; y++ {
				blockID := GrassID
				fluctuation := random.Intn(3)
				switch {
				case y == height && y >= snowLine:
					blockID = SnowID
				case y == height:
					blockID = GrassID
				case y > height-3-fluctuation:
					blockID = DirtID
				default:
					blockID = StoneID
				}
				world.SetBlock(x, y, z, blockID)
			}
		}
	}
}

// snowLine is the height above which terrain tops are snow instead of grass.
const snowLine = 10

// GeneratePlatform bulk-inserts a flat square platform of one block type
// at the given height, radius blocks in each direction around (0, 0).
func GeneratePlatform(world *VoxelWorld, radius, y int, id uint8) {
	for x := -radius; x <= radius; x++ {
		for z := -radius; z <= radius; z++ {
			world.SetBlock(x, y, z, id)
		}
	}
}
