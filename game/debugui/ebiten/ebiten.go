// Package ebiten provides Dear ImGui backend integration for Ebiten hosts of
// the blockfall engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Hosts call BeginFrame/EndFrame around their update step and Draw during
// rendering.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}
