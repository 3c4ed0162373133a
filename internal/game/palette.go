package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

var Palette = struct {
	Field       RGB
	FieldDark   RGB
	FieldWorn   RGB
	Woods       RGB
	WoodsDeep   RGB
	Strip       RGB
	BalloonSkin RGB
	BalloonNose RGB
	DomeShell   RGB
	DomeDish    RGB
	DepotDrum   RGB
	DepotBand   RGB
	RigMetal    RGB
	PlaneBody   RGB
	PlaneWing   RGB
	PlaneCanopy RGB
	DroneBody   RGB
	DroneEye    RGB
	Tracer      RGB
	MissileTail RGB
	Smoke       RGB
	Glow        RGB
	FireHot     RGB
	FireMid     RGB
	FireCool    RGB
	HUDText     RGB
	HUDAccent   RGB
	HUDWarn     RGB
}{
	Field:       RGB{R: 112, G: 128, B: 74},
	FieldDark:   RGB{R: 96, G: 112, B: 62},
	FieldWorn:   RGB{R: 128, G: 132, B: 84},
	Woods:       RGB{R: 74, G: 100, B: 56},
	WoodsDeep:   RGB{R: 58, G: 84, B: 46},
	Strip:       RGB{R: 142, G: 134, B: 108},
	BalloonSkin: RGB{R: 196, G: 196, B: 188},
	BalloonNose: RGB{R: 160, G: 160, B: 154},
	DomeShell:   RGB{R: 176, G: 180, B: 186},
	DomeDish:    RGB{R: 220, G: 224, B: 228},
	DepotDrum:   RGB{R: 150, G: 112, B: 70},
	DepotBand:   RGB{R: 190, G: 60, B: 50},
	RigMetal:    RGB{R: 90, G: 92, B: 96},
	PlaneBody:   RGB{R: 88, G: 104, B: 66},
	PlaneWing:   RGB{R: 70, G: 86, B: 54},
	PlaneCanopy: RGB{R: 150, G: 190, B: 210},
	DroneBody:   RGB{R: 120, G: 110, B: 140},
	DroneEye:    RGB{R: 255, G: 90, B: 60},
	Tracer:      RGB{R: 255, G: 228, B: 140},
	MissileTail: RGB{R: 235, G: 235, B: 240},
	Smoke:       RGB{R: 120, G: 120, B: 125},
	Glow:        RGB{R: 255, G: 200, B: 90},
	FireHot:     RGB{R: 255, G: 210, B: 110},
	FireMid:     RGB{R: 255, G: 150, B: 70},
	FireCool:    RGB{R: 190, G: 70, B: 45},
	HUDText:     RGB{R: 235, G: 235, B: 225},
	HUDAccent:   RGB{R: 255, G: 215, B: 90},
	HUDWarn:     RGB{R: 235, G: 84, B: 60},
}
