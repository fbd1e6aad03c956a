package graphic

// CommandKind identifies the kind of a flattened draw command.
type CommandKind uint8

const (
	CommandText    CommandKind = iota // text run
	CommandPolygon                    // closed polygon, filled or stroked
	CommandPath                       // open polyline, always stroked
	CommandRect                       // axis-aligned rectangle in local space
	CommandEllipse                    // ellipse with center (RX, RY) in local space
)

// DrawCommand is a single leaf primitive with its transform fully resolved.
// Transform maps the command's local coordinates into the viewport; the
// Rasterizer collaborator consumes a flat slice of these with no remaining
// scene-graph structure.
type DrawCommand struct {
	Kind        CommandKind
	Transform   Matrix
	Color       Color
	StrokeWidth float64 // 0 = filled (rect/ellipse) or hairline (polygon/path)
	Filled      bool
	Points      []Vec2 // polygon and path vertices; MUST NOT be mutated
	Width       float64
	Height      float64
	RX, RY      float64
	Font        Font
	Text        string
}

// Picture is a frozen, renderable snapshot of a Tree. The flattened command
// list is computed once when the picture is made; a Picture has no mutation
// operations and is consumed only by export and the interaction runtime.
type Picture struct {
	root   *Tree
	cmds   []DrawCommand
	bounds Rect
}

// Annotation style used by Explain for the synthetic bounding-box outlines.
const explainStrokeWidth = 1.0

var explainColor = Red

// Make freezes a tree into a Picture. Panics if t is nil.
func Make(t *Tree) *Picture {
	if t == nil {
		panic("graphic: nil tree")
	}
	return &Picture{
		root:   t,
		cmds:   appendCommands(nil, t, Identity(), false),
		bounds: t.Bounds(),
	}
}

// Explain freezes a tree into a diagnostic Picture: the content commands of
// Make plus one stroked-rectangle annotation per node, outlining that node's
// bounding box in its resolved coordinate frame. Each annotation paints
// above the subtree it describes. Panics if t is nil.
func Explain(t *Tree) *Picture {
	if t == nil {
		panic("graphic: nil tree")
	}
	return &Picture{
		root:   t,
		cmds:   appendCommands(nil, t, Identity(), true),
		bounds: t.Bounds(),
	}
}

// Commands returns the flattened draw commands in paint order (bottom of an
// overlay first). The returned slice MUST NOT be mutated by the caller.
func (p *Picture) Commands() []DrawCommand {
	return p.cmds
}

// Bounds returns the bounding box of the snapshot's content.
func (p *Picture) Bounds() Rect {
	return p.bounds
}

// appendCommands walks the tree depth-first, accumulating the absolute
// transform and emitting one command per leaf in paint order. With explain
// set, it also emits a bounding-box outline per node after that node's
// content, so annotations draw above what they describe.
func appendCommands(cmds []DrawCommand, t *Tree, m Matrix, explain bool) []DrawCommand {
	switch t.kind {
	case kindEmpty:
		return cmds
	case kindText:
		cmds = append(cmds, DrawCommand{
			Kind:        CommandText,
			Transform:   m,
			Color:       t.color,
			StrokeWidth: t.stroke,
			Font:        t.font,
			Text:        t.text,
			Width:       t.w,
			Height:      t.h,
		})
	case kindPolygon:
		cmds = append(cmds, DrawCommand{
			Kind:        CommandPolygon,
			Transform:   m,
			Color:       t.color,
			StrokeWidth: t.stroke,
			Filled:      t.filled,
			Points:      t.pts,
		})
	case kindPath:
		cmds = append(cmds, DrawCommand{
			Kind:        CommandPath,
			Transform:   m,
			Color:       t.color,
			StrokeWidth: t.stroke,
			Points:      t.pts,
		})
	case kindRect:
		cmds = append(cmds, DrawCommand{
			Kind:        CommandRect,
			Transform:   m,
			Color:       t.color,
			StrokeWidth: t.stroke,
			Filled:      t.stroke == 0,
			Width:       t.w,
			Height:      t.h,
		})
	case kindEllipse:
		cmds = append(cmds, DrawCommand{
			Kind:        CommandEllipse,
			Transform:   m,
			Color:       t.color,
			StrokeWidth: t.stroke,
			Filled:      t.stroke == 0,
			RX:          t.rx,
			RY:          t.ry,
		})
	case kindTransform:
		cmds = appendCommands(cmds, t.child, m.Multiply(t.m), explain)
	case kindOverlay:
		cmds = appendCommands(cmds, t.bottom, m, explain)
		cmds = appendCommands(cmds, t.top, m, explain)
	case kindPlace:
		dx, dy := t.placeOffset()
		cmds = appendCommands(cmds, t.first, m, explain)
		cmds = appendCommands(cmds, t.second, m.Multiply(Translation(dx, dy)), explain)
	}

	if explain {
		if r := t.Bounds(); !r.IsEmpty() {
			cmds = append(cmds, DrawCommand{
				Kind:        CommandRect,
				Transform:   m.Multiply(Translation(r.X1, r.Y1)),
				Color:       explainColor,
				StrokeWidth: explainStrokeWidth,
				Width:       r.Width(),
				Height:      r.Height(),
			})
		}
	}
	return cmds
}
