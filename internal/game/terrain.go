package game

// Terrain is the static ground backdrop: field patches, woods, and the
// airstrip, baked once into a sprite buffer at mission start.
type Terrain struct {
	buf []float32
}

func NewTerrain(seed uint64) *Terrain {
	t := &Terrain{buf: make([]float32, 0, 4096)}
	t.generate(seed)
	return t
}

func add(buf []float32, x, y, size float64, col RGB) []float32 {
	return append(buf,
		float32(x), float32(y), float32(size),
		float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, 1, 0,
	)
}

func (t *Terrain) generate(seed uint64) {
	// Field patchwork: coarse grid with hash-varied shading.
	const cell = 128
	for cy := 0; cy < WorldHeight/cell; cy++ {
		for cx := 0; cx < WorldWidth/cell; cx++ {
			h := hash2D(seed, cx, cy)
			col := Palette.Field
			switch h % 4 {
			case 1:
				col = Palette.FieldDark
			case 2:
				col = Palette.FieldWorn
			}
			x := float64(cx*cell + cell/2)
			y := float64(cy*cell + cell/2)
			t.buf = add(t.buf, x, y, cell, col)
		}
	}

	// Woods: clusters of tree blobs.
	r := NewRand(seed ^ 0x3A11)
	for i := 0; i < 60; i++ {
		cx := r.RangeF(40, float64(WorldWidth)-40)
		cy := r.RangeF(40, float64(WorldHeight)-40)
		n := r.Range(4, 12)
		for j := 0; j < n; j++ {
			x := cx + r.RangeF(-34, 34)
			y := cy + r.RangeF(-34, 34)
			col := Palette.Woods
			if r.Intn(3) == 0 {
				col = Palette.WoodsDeep
			}
			t.buf = add(t.buf, x, y, r.RangeF(8, 16), col)
		}
	}

	// Airstrip under the plane's start position.
	for i := 0; i < 10; i++ {
		t.buf = add(t.buf, PlaneStartX-60+float64(i)*14, PlaneStartY, 16, Palette.Strip)
	}
}

// RenderData returns the baked ground sprites.
func (t *Terrain) RenderData() []float32 {
	return t.buf
}
