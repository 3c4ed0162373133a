package game

import "math"

// sceneGrid is a uniform cell grid over the world used for radius queries.
// Rebuilt once per frame from live objects; cell slices are reused across
// rebuilds to avoid churn.
type sceneGrid struct {
	cellSize int
	gridW    int
	gridH    int
	cells    [][]*SceneObject
}

func newSceneGrid(worldW, worldH, cellSize int) *sceneGrid {
	if cellSize <= 0 {
		cellSize = SceneCellSize
	}
	gw := (worldW + cellSize - 1) / cellSize
	gh := (worldH + cellSize - 1) / cellSize
	if gw < 1 {
		gw = 1
	}
	if gh < 1 {
		gh = 1
	}
	return &sceneGrid{
		cellSize: cellSize,
		gridW:    gw,
		gridH:    gh,
		cells:    make([][]*SceneObject, gw*gh),
	}
}

func (g *sceneGrid) rebuild(objects map[EntityID]*SceneObject) {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	for _, o := range objects {
		gx := clamp(int(o.X)/g.cellSize, 0, g.gridW-1)
		gy := clamp(int(o.Y)/g.cellSize, 0, g.gridH-1)
		idx := gy*g.gridW + gx
		g.cells[idx] = append(g.cells[idx], o)
	}
}

// query visits every live object whose centre lies within radius of (x, y).
func (g *sceneGrid) query(x, y, radius float64, fn func(*SceneObject)) {
	minGX := clamp(int(math.Floor((x-radius)/float64(g.cellSize))), 0, g.gridW-1)
	minGY := clamp(int(math.Floor((y-radius)/float64(g.cellSize))), 0, g.gridH-1)
	maxGX := clamp(int(math.Floor((x+radius)/float64(g.cellSize))), 0, g.gridW-1)
	maxGY := clamp(int(math.Floor((y+radius)/float64(g.cellSize))), 0, g.gridH-1)
	r2 := radius * radius
	for gy := minGY; gy <= maxGY; gy++ {
		for gx := minGX; gx <= maxGX; gx++ {
			for _, o := range g.cells[gy*g.gridW+gx] {
				if o.dead {
					continue
				}
				dx := o.X - x
				dy := o.Y - y
				if dx*dx+dy*dy <= r2 {
					fn(o)
				}
			}
		}
	}
}
