package domain

import "strconv"

// MinStrokePoints is the fewest points a gesture needs to count as a stroke
const MinStrokePoints = 2

// Point is a position in canvas space. Mapping device pixels to canvas
// space is up to the presentation layer.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Stroke is one committed pointer-down-to-up gesture
type Stroke struct {
	ID       string  `json:"id"`
	PlayerID string  `json:"playerId"`
	Color    string  `json:"color"`
	Points   []Point `json:"points"`
}

// StrokeID derives the stable id of the stroke drawn on a given turn
func StrokeID(playerID string, turn int) string {
	return playerID + "-" + strconv.Itoa(turn)
}

// Canvas holds the committed strokes of a round and the stroke in progress.
// The zero value is an empty canvas.
type Canvas struct {
	strokes  []Stroke
	current  []Point
	drawing  bool
	undoUsed bool
}

// Drawing reports whether a stroke is in progress
func (c *Canvas) Drawing() bool {
	return c.drawing
}

// Begin starts a new in-progress stroke at p
func (c *Canvas) Begin(p Point) error {
	if c.drawing {
		return ErrAlreadyDrawing
	}
	c.drawing = true
	c.current = []Point{p}
	return nil
}

// Extend appends p to the in-progress stroke
func (c *Canvas) Extend(p Point) error {
	if !c.drawing {
		return ErrNotDrawing
	}
	c.current = append(c.current, p)
	return nil
}

// End finishes the in-progress stroke and returns its points. ok is false
// when the gesture was too short to keep; it is discarded either way.
func (c *Canvas) End() (points []Point, ok bool, err error) {
	if !c.drawing {
		return nil, false, ErrNotDrawing
	}
	points = c.current
	c.drawing = false
	c.current = nil
	if len(points) < MinStrokePoints {
		return nil, false, nil
	}
	return points, true, nil
}

// Commit appends a finished stroke
func (c *Canvas) Commit(s Stroke) {
	c.strokes = append(c.strokes, s)
}

// Undo removes the most recent stroke. It works once per canvas lifetime.
func (c *Canvas) Undo() (Stroke, error) {
	if c.undoUsed {
		return Stroke{}, ErrUndoUsed
	}
	if len(c.strokes) == 0 {
		return Stroke{}, ErrNothingToUndo
	}
	last := c.strokes[len(c.strokes)-1]
	c.strokes = c.strokes[:len(c.strokes)-1]
	c.undoUsed = true
	return last, nil
}

// UndoUsed reports whether the undo has been spent
func (c *Canvas) UndoUsed() bool {
	return c.undoUsed
}

// Len returns the number of committed strokes
func (c *Canvas) Len() int {
	return len(c.strokes)
}

// Strokes returns a copy of the committed strokes in drawing order
func (c *Canvas) Strokes() []Stroke {
	out := make([]Stroke, len(c.strokes))
	for i, s := range c.strokes {
		pts := make([]Point, len(s.Points))
		copy(pts, s.Points)
		s.Points = pts
		out[i] = s
	}
	return out
}

// InProgress returns a copy of the in-progress stroke's points
func (c *Canvas) InProgress() []Point {
	if !c.drawing {
		return nil
	}
	pts := make([]Point, len(c.current))
	copy(pts, c.current)
	return pts
}
