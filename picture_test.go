package graphic

import "testing"

func TestMakePaintOrder(t *testing.T) {
	bottom := mustRect(t, Blue, 10, 10)
	top := mustRect(t, Red, 4, 4)
	pic := Make(Onto(top, bottom))

	cmds := pic.Commands()
	if len(cmds) != 2 {
		t.Fatalf("len(cmds) = %d, want 2", len(cmds))
	}
	if cmds[0].Color != Blue || cmds[1].Color != Red {
		t.Errorf("paint order = %v, %v; want bottom (Blue) first", cmds[0].Color, cmds[1].Color)
	}
}

func TestMakeResolvesTransforms(t *testing.T) {
	leaf := mustRect(t, Red, 10, 10)
	pic := Make(Translate(3, 4, Scale(2, 2, leaf)))

	cmds := pic.Commands()
	if len(cmds) != 1 {
		t.Fatalf("len(cmds) = %d, want 1", len(cmds))
	}
	assertMatrix(t, "resolved", cmds[0].Transform,
		Translation(3, 4).Multiply(Scaling(2, 2)))
	// The leaf's geometry stays local.
	assertNear(t, "width", cmds[0].Width, 10)
}

func TestMakeEmpty(t *testing.T) {
	pic := Make(Empty())
	if len(pic.Commands()) != 0 {
		t.Errorf("empty tree produced %d commands", len(pic.Commands()))
	}
	if !pic.Bounds().IsEmpty() {
		t.Error("empty tree picture has non-empty bounds")
	}
}

func TestMakeNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Make(nil) did not panic")
		}
	}()
	Make(nil)
}

func TestCommandFillFlags(t *testing.T) {
	filled := mustRect(t, Red, 10, 10)
	outlined, err := Rectangle(Red, 2, 10, 10)
	if err != nil {
		t.Fatal(err)
	}
	cmds := Make(Onto(outlined, filled)).Commands()
	if !cmds[0].Filled || cmds[0].StrokeWidth != 0 {
		t.Errorf("filled rect command = %+v", cmds[0])
	}
	if cmds[1].Filled || cmds[1].StrokeWidth != 2 {
		t.Errorf("outlined rect command = %+v", cmds[1])
	}
}

// --- Explain ---

func TestExplainAnnotatesEveryNode(t *testing.T) {
	a := mustRect(t, Red, 10, 10)
	b := mustRect(t, Blue, 10, 10)
	tree := Translate(5, 0, Onto(a, b))

	// Nodes: transform, overlay, two leaves = 4 annotations + 2 content.
	cmds := Explain(tree).Commands()
	if len(cmds) != 6 {
		t.Fatalf("len(cmds) = %d, want 6", len(cmds))
	}

	annotations := 0
	for _, cmd := range cmds {
		if cmd.Color == explainColor && cmd.StrokeWidth == explainStrokeWidth {
			annotations++
		}
	}
	if annotations < 4 {
		t.Errorf("found %d annotation commands, want at least 4", annotations)
	}
}

func TestExplainAnnotationAboveContent(t *testing.T) {
	leaf := mustRect(t, Blue, 10, 10)
	cmds := Explain(leaf).Commands()
	if len(cmds) != 2 {
		t.Fatalf("len(cmds) = %d, want 2", len(cmds))
	}
	if cmds[0].Color != Blue {
		t.Error("content should paint before its annotation")
	}
	ann := cmds[1]
	if ann.Kind != CommandRect || ann.Filled {
		t.Errorf("annotation = %+v, want stroked rect", ann)
	}
	assertNear(t, "annotation width", ann.Width, 10)
	assertNear(t, "annotation height", ann.Height, 10)
}

func TestExplainSkipsEmptyBoxes(t *testing.T) {
	cmds := Explain(Empty()).Commands()
	if len(cmds) != 0 {
		t.Errorf("empty tree produced %d explain commands", len(cmds))
	}
}

func TestExplainAnnotationFollowsTransform(t *testing.T) {
	leaf := mustRect(t, Blue, 10, 10)
	cmds := Explain(Translate(7, 9, leaf)).Commands()
	// Last command annotates the transform node; its box starts at the
	// translated origin.
	ann := cmds[len(cmds)-1]
	assertMatrix(t, "annotation transform", ann.Transform, Translation(7, 9))
}
