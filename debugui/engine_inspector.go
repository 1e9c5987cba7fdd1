package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/input"
)

// EngineInspector shows the session's board state and lets a developer
// inject intents.
type EngineInspector struct {
	Session *game.Session
}

func (ei *EngineInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(240, 520), imgui.CondOnce)
	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := ei.Session.Snapshot()

	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.Text(fmt.Sprintf("Rate: %s (%d/s)", ei.Session.Rate(), int(ei.Session.Rate())))
	imgui.Text(fmt.Sprintf("Piece: %s  color %d", snap.Piece.Kind, snap.Piece.Color))
	imgui.Text(fmt.Sprintf("Anchor: row %d col %d", snap.Anchor.Row, snap.Anchor.Col))
	imgui.Text(fmt.Sprintf("Ghost row: %d", snap.GhostRow))
	switch {
	case snap.Over:
		imgui.Text("State: GAME OVER")
	case ei.Session.Quit():
		imgui.Text("State: quit")
	default:
		imgui.Text("State: falling")
	}

	imgui.Separator()
	for _, intent := range []input.Intent{input.MoveLeft, input.Rotate, input.MoveRight, input.SoftDrop} {
		if imgui.Button(intent.String()) {
			ei.Session.Push(intent)
		}
		if intent != input.SoftDrop {
			imgui.SameLine()
		}
	}

	imgui.Separator()
	if imgui.TreeNodeStr("Grid") {
		for _, line := range GridLines(snap) {
			imgui.Text(line)
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Piece Shape") {
		imgui.Text(snap.Piece.Shape.String())
		imgui.TreePop()
	}

	imgui.End()
}
