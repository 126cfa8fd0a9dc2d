package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// MobileUI adapts the layout to the device the app is running on
type MobileUI struct {
	device fyne.Device
}

// NewMobileUI creates a new mobile UI helper for device
func NewMobileUI(device fyne.Device) *MobileUI {
	return &MobileUI{device: device}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.device != nil && m.device.IsMobile()
}

// IsPortrait returns true if device is in portrait orientation
func (m *MobileUI) IsPortrait() bool {
	if m.device == nil {
		return false
	}
	orientation := m.device.Orientation()
	return orientation == fyne.OrientationVertical || orientation == fyne.OrientationVerticalUpsideDown
}

// SplitWithSidePanel places the side panel next to main. Portrait mobile
// screens are too narrow for a horizontal split, so the panel goes on top.
func (m *MobileUI) SplitWithSidePanel(side, main fyne.CanvasObject) *container.Split {
	if m.IsMobileDevice() && m.IsPortrait() {
		split := container.NewVSplit(side, main)
		split.SetOffset(SidePanelOffset)
		return split
	}
	split := container.NewHSplit(side, main)
	split.SetOffset(SidePanelOffset)
	return split
}
