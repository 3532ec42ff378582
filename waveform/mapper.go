// SPDX-License-Identifier: EPL-2.0

package waveform

// ScaleX maps a 1-based frame number onto the target width.
// A targetWidth <= 0 leaves x unscaled. totalFrames must be > 0.
func ScaleX(rawIndex, totalFrames, targetWidth int) float64 {
	if targetWidth <= 0 {
		targetWidth = totalFrames
	}
	return float64(rawIndex) * min(1.0, float64(targetWidth)/float64(totalFrames))
}

// EffectiveWidth is the width x values are scaled into.
func EffectiveWidth(maxWidth, totalFrames int) int {
	if maxWidth <= 0 {
		return totalFrames
	}
	return min(maxWidth, totalFrames)
}

// EffectiveHeight is the height of one channel's band. Without a maximum the
// band spans the full sample range, otherwise it is capped at half of it.
func EffectiveHeight(maxHeight, bitDepth int) int {
	if maxHeight <= 0 {
		return 1<<bitDepth - 1
	}
	return min(maxHeight, 1<<(bitDepth-1))
}

// ScaleY maps a raw sample into [-height/2, height/2], inverted so larger
// samples move up in a y-down coordinate system.
func ScaleY(raw int, p FormatProfile, height int) float64 {
	if !p.Signed {
		raw -= p.Bias
	}
	divisor := float64(int64(1) << (p.BitDepth() - 1))
	// multiply before dividing to keep resolution on small magnitudes
	return (float64(raw) * -float64(height) / 2) / divisor
}

// ChannelOffset is the vertical center of channel c's band.
func ChannelOffset(c, height int) float64 {
	return float64(height)*float64(c) + float64(height)/2
}

// Mapper holds the scaling parameters resolved when a decoder opens.
type Mapper struct {
	Profile     FormatProfile
	TotalFrames int
	Width       int
	Height      int
}

// NewMapper resolves width and height for a container.
func NewMapper(p FormatProfile, totalFrames, maxWidth, maxHeight int) Mapper {
	return Mapper{
		Profile:     p,
		TotalFrames: totalFrames,
		Width:       EffectiveWidth(maxWidth, totalFrames),
		Height:      EffectiveHeight(maxHeight, p.BitDepth()),
	}
}

// X scales a 1-based frame number.
func (m Mapper) X(frame int) float64 {
	return ScaleX(frame, m.TotalFrames, m.Width)
}

// Y scales a raw sample and shifts it into channel c's band.
func (m Mapper) Y(raw, c int) float64 {
	return ScaleY(raw, m.Profile, m.Height) + ChannelOffset(c, m.Height)
}
