package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

type fakeDevice struct {
	fyne.Device
	mobile      bool
	orientation fyne.DeviceOrientation
}

func (d fakeDevice) IsMobile() bool                      { return d.mobile }
func (d fakeDevice) Orientation() fyne.DeviceOrientation { return d.orientation }

func TestSplitWithSidePanel(t *testing.T) {
	test.NewTempApp(t)

	tests := []struct {
		name           string
		device         fyne.Device
		wantHorizontal bool
	}{
		{name: "no device", device: nil, wantHorizontal: true},
		{name: "desktop", device: fakeDevice{mobile: false}, wantHorizontal: true},
		{name: "mobile landscape", device: fakeDevice{mobile: true, orientation: fyne.OrientationHorizontalLeft}, wantHorizontal: true},
		{name: "mobile portrait", device: fakeDevice{mobile: true, orientation: fyne.OrientationVertical}, wantHorizontal: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMobileUI(tt.device)
			split := m.SplitWithSidePanel(widget.NewLabel("side"), widget.NewLabel("main"))

			assert.Equal(t, tt.wantHorizontal, split.Horizontal)
			assert.Equal(t, SidePanelOffset, split.Offset)
		})
	}
}
