package leveldata

import (
	"fmt"

	"github.com/automoto/keydoor/config"
	"github.com/automoto/keydoor/shared/gamemath"
)

// WorldCount is the number of worlds in the built-in progression.
const WorldCount = 3

// Shared pickup and exit sizes.
const (
	KeySize    = 40
	DoorWidth  = 55
	DoorHeight = 75
)

// ByNumber builds the numbered world against groundY.
func ByNumber(world int, groundY float64) (*Definition, error) {
	switch world {
	case 1:
		return World1(groundY), nil
	case 2:
		return World2(groundY), nil
	case 3:
		return World3(groundY), nil
	}
	return nil, fmt.Errorf("world %d: %w", world, ErrUnknownWorld)
}

func plat(x, y, w float64) gamemath.Rect {
	return gamemath.Rect{X: x, Y: y, W: w, H: 20}
}

func hazard(x, y, size float64) gamemath.Rect {
	return gamemath.Rect{X: x, Y: y - size, W: size, H: size}
}

func localSpawns(groundY float64, n int) []SpawnPoint {
	spawns := make([]SpawnPoint, n)
	for i := range spawns {
		spawns[i] = SpawnPoint{X: 50 + 50*float64(i), Y: groundY - 100, Index: i + 1}
	}
	return spawns
}

func finish(d *Definition) *Definition {
	d.DeriveCapabilities()
	d.DeriveWidth()
	return d
}

// World1 is a climb over moving and crumbling platforms.
func World1(g float64) *Definition {
	d := &Definition{
		Name:    "World 1",
		World:   1,
		Profile: config.ProfileClassic,
		GroundY: g,
		Players: 2,
		Platforms: []gamemath.Rect{
			plat(0, g, 180),
			plat(200, g-30, 80),
			plat(310, g-70, 70),
			plat(410, g-110, 65),
			plat(505, g-155, 70),
			plat(605, g-200, 85),
			plat(720, g-200, 100),
			plat(850, g-165, 70),
			plat(950, g-120, 65),
			plat(1045, g-75, 75),
			plat(1150, g-30, 80),
			plat(1260, g, 100),
			plat(1390, g-50, 70),
			plat(1490, g-100, 65),
			plat(1585, g-155, 70),
			plat(1685, g-210, 75),
			plat(1790, g-270, 90),
			plat(1910, g-320, 120),
			plat(2060, g-280, 70),
			plat(2160, g-230, 65),
			plat(2255, g-175, 70),
			plat(2355, g-120, 75),
			plat(2460, g-60, 80),
			plat(2570, g-110, 70),
			plat(2670, g-170, 65),
			plat(2765, g-235, 70),
			plat(2865, g-305, 85),
			plat(2980, g-360, 150),
		},
		MovingPlatforms: []MovingPlatform{
			{Rect: gamemath.Rect{X: 650, Y: g - 250, W: 70, H: 20}, StartX: 605, EndX: 720, Speed: 2, Direction: 1},
			{Rect: gamemath.Rect{X: 1120, Y: g - 60, W: 60, H: 20}, StartX: 1045, EndX: 1150, Speed: 1.8, Direction: 1},
			{Rect: gamemath.Rect{X: 1730, Y: g - 240, W: 60, H: 20}, StartX: 1685, EndX: 1790, Speed: 2.5, Direction: 1},
			{Rect: gamemath.Rect{X: 2410, Y: g - 90, W: 60, H: 20}, StartX: 2355, EndX: 2460, Speed: 2, Direction: 1},
			{Rect: gamemath.Rect{X: 2815, Y: g - 275, W: 60, H: 20}, StartX: 2765, EndX: 2865, Speed: 1.8, Direction: 1},
		},
		FallingPlatforms: []gamemath.Rect{
			{X: 275, Y: g - 50, W: 55, H: 20},
			{X: 1225, Y: g - 15, W: 55, H: 20},
			{X: 2220, Y: g - 205, W: 55, H: 20},
		},
		Key:         gamemath.Rect{X: 1950, Y: g - 370, W: KeySize, H: KeySize},
		Door:        gamemath.Rect{X: 3030, Y: g - 430, W: DoorWidth, H: DoorHeight},
		SpawnPoints: localSpawns(g, 2),
	}
	return finish(d)
}

// World2 is a long run across gaps seeded with danger buttons.
func World2(g float64) *Definition {
	d := &Definition{
		Name:    "World 2",
		World:   2,
		Profile: config.ProfileClassic,
		GroundY: g,
		Players: 2,
		Platforms: []gamemath.Rect{
			plat(0, g, 250),
			plat(320, g, 60),
			plat(450, g, 60),
			plat(580, g, 60),
			plat(710, g, 80),
			plat(850, g-60, 100),
			plat(1000, g-100, 80),
			plat(1130, g-140, 80),
			plat(1260, g-100, 80),
			plat(1390, g-60, 100),
			plat(1550, g, 50),
			plat(1660, g-40, 50),
			plat(1770, g, 50),
			plat(1880, g-40, 50),
			plat(1990, g, 50),
			plat(2100, g, 120),
			plat(2280, g-180, 100),
			plat(2440, g-180, 100),
			plat(2600, g-120, 80),
			plat(2740, g-60, 80),
			plat(2880, g, 60),
			plat(3000, g-50, 60),
			plat(3120, g, 60),
			plat(3240, g-50, 60),
			plat(3360, g, 60),
			plat(3480, g, 150),
			plat(3700, g-220, 120),
			plat(3880, g-160, 80),
			plat(4020, g-100, 80),
			plat(4160, g-40, 80),
			plat(4300, g, 100),
			plat(4460, g, 200),
		},
		Key:         gamemath.Rect{X: 3740, Y: g - 280, W: KeySize, H: KeySize},
		Door:        gamemath.Rect{X: 4520, Y: g - DoorHeight, W: DoorWidth, H: DoorHeight},
		SpawnPoints: localSpawns(g, 2),
	}
	for _, x := range []float64{280, 520, 920, 1180, 1440, 1610, 1830, 2200, 2500, 2950, 3190, 3580, 3780, 4020, 4300} {
		d.Hazards = append(d.Hazards, gamemath.Rect{X: x, Y: g - 35, W: 40, H: 35})
	}
	return finish(d)
}

// World3 is the four-player box puzzle.
func World3(g float64) *Definition {
	const box = 45
	d := &Definition{
		Name:    "World 3",
		World:   3,
		Profile: config.ProfileBoxes,
		GroundY: g,
		Players: 4,
		Platforms: []gamemath.Rect{
			plat(0, g, 400),
			plat(480, g, 100),
			plat(650, g-30, 100),
			plat(820, g, 100),
			plat(990, g-50, 120),
			plat(1180, g, 150),
			plat(1400, g-130, 120),
			plat(1590, g-80, 100),
			plat(1760, g-30, 100),
			plat(1930, g, 150),
			plat(2150, g, 200),
			plat(2420, g-200, 150),
			plat(2640, g-150, 100),
			plat(2810, g-80, 100),
			plat(2980, g, 150),
			plat(3200, g-40, 80),
			plat(3350, g, 80),
			plat(3500, g-40, 80),
			plat(3650, g, 80),
			plat(3800, g-40, 80),
			plat(3950, g, 150),
			plat(4170, g, 250),
			plat(4500, g-280, 150),
			plat(4720, g-200, 100),
			plat(4890, g-130, 100),
			plat(5060, g-60, 100),
			plat(5230, g, 150),
			plat(5450, g-30, 80),
			plat(5600, g, 80),
			plat(5750, g-30, 80),
			plat(5900, g, 80),
			plat(6050, g, 300),
		},
		Key:         gamemath.Rect{X: 4540, Y: g - 340, W: KeySize, H: KeySize},
		Door:        gamemath.Rect{X: 6150, Y: g - DoorHeight, W: DoorWidth, H: DoorHeight},
		SpawnPoints: localSpawns(g, 4),
	}
	for _, x := range []float64{560, 3290, 3590, 4350, 5530, 5830} {
		d.Hazards = append(d.Hazards, hazard(x, g, 35))
	}
	for i, x := range []float64{300, 350, 1200, 1250, 2180, 2230, 2280, 4200, 4250, 4300, 5250} {
		d.Boxes = append(d.Boxes, BoxDef{ID: i + 1, X: x, Y: g - box})
	}
	return finish(d)
}
