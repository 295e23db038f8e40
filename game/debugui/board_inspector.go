package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
)

// renderBoard lists every rectangle on the board, ghost projection included.
func (in *Inspector) renderBoard() {
	if !imgui.TreeNodeStr("Board Rectangles") {
		return
	}

	snapshot := in.game.Snapshot()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("BoardTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("#")
		imgui.TableSetupColumn("Rect")
		imgui.TableSetupColumn("Color")
		imgui.TableHeadersRow()

		for i, cr := range snapshot.Rects {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", i))
			imgui.TableNextColumn()
			imgui.Text(cr.Rect.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("#%02X%02X%02X", cr.Color.R, cr.Color.G, cr.Color.B))
		}

		imgui.EndTable()
	}

	if len(snapshot.Ghost) > 0 {
		imgui.Text("Ghost:")
		for _, r := range snapshot.Ghost {
			imgui.BulletText(r.String())
		}
	}

	imgui.TreePop()
}
