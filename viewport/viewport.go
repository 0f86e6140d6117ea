// Package viewport maps between world centimeters and device cells under pan
// and zoom. The transform is a uniform scale plus a translation; zooming
// always keeps the point under the cursor fixed on screen.
package viewport

import "drafter/geometry"

// BaseCmPerPixel is the world scale at zoom 1.0.
const BaseCmPerPixel = 2.0

const (
	MinZoom = 0.2
	MaxZoom = 8.0

	// Per-step wheel factors. Intentionally asymmetric: one step in followed
	// by one step out does not land exactly back on the starting zoom.
	zoomInFactor  = 1.25
	zoomOutFactor = 0.8
)

// Viewport holds the current pan/zoom state. OriginX/OriginY are the device
// origin expressed in world-cm-scaled device units; CmPerPixel and
// PixelsPerCm are both derived from Zoom and are always updated together.
type Viewport struct {
	OriginX, OriginY float64
	Zoom             float64
	CmPerPixel       float64
	PixelsPerCm      float64
	Width, Height    int
}

// New returns a viewport at zoom 1.0 with the origin at the top-left.
func New(width, height int) *Viewport {
	v := &Viewport{Zoom: 1.0, Width: width, Height: height}
	v.updateScale()
	return v
}

func (v *Viewport) updateScale() {
	v.CmPerPixel = BaseCmPerPixel / v.Zoom
	v.PixelsPerCm = v.Zoom / BaseCmPerPixel
}

// Resize updates the device surface dimensions.
func (v *Viewport) Resize(width, height int) {
	v.Width = width
	v.Height = height
}

// WorldFromDevice converts a device position to world centimeters.
func (v *Viewport) WorldFromDevice(dx, dy float64) geometry.Point {
	return geometry.Point{
		X: dx*v.CmPerPixel + v.OriginX*v.CmPerPixel,
		Y: dy*v.CmPerPixel + v.OriginY*v.CmPerPixel,
	}
}

// DeviceFromWorld converts a world position to device coordinates. It is the
// exact inverse of WorldFromDevice at a fixed zoom.
func (v *Viewport) DeviceFromWorld(wx, wy float64) (float64, float64) {
	return (wx - v.OriginX*v.CmPerPixel) * v.PixelsPerCm,
		(wy - v.OriginY*v.CmPerPixel) * v.PixelsPerCm
}

// Pan shifts the view by a device-space delta. The origin moves against the
// delta so the content follows the drag.
func (v *Viewport) Pan(dDevX, dDevY float64) {
	v.OriginX -= dDevX
	v.OriginY -= dDevY
}

// SetZoom clamps and applies a zoom level, recomputing both derived scales.
func (v *Viewport) SetZoom(zoom float64) {
	if zoom < MinZoom {
		zoom = MinZoom
	} else if zoom > MaxZoom {
		zoom = MaxZoom
	}
	v.Zoom = zoom
	v.updateScale()
}

// ZoomAt applies one wheel step centered on the given device position: the
// world point under the cursor before the zoom is still under it afterwards.
// Positive wheelDelta zooms in.
func (v *Viewport) ZoomAt(wheelDelta float64, deviceX, deviceY float64) {
	anchor := v.WorldFromDevice(deviceX, deviceY)

	factor := zoomOutFactor
	if wheelDelta > 0 {
		factor = zoomInFactor
	}
	v.SetZoom(v.Zoom * factor)

	// Solve the origin so that anchor maps back to (deviceX, deviceY):
	// anchor.X = (deviceX + OriginX) * CmPerPixel.
	v.OriginX = anchor.X/v.CmPerPixel - deviceX
	v.OriginY = anchor.Y/v.CmPerPixel - deviceY
}

// Reset restores zoom 1.0 and the origin to the top-left.
func (v *Viewport) Reset() {
	v.OriginX = 0
	v.OriginY = 0
	v.Zoom = 1.0
	v.updateScale()
}
