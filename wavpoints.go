// SPDX-License-Identifier: EPL-2.0

package wavpoints

import (
	"github.com/ik5/wavpoints/formats/aiff"
	"github.com/ik5/wavpoints/formats/wav"
	"github.com/ik5/wavpoints/waveform"
)

// DefaultRegistry returns a registry with the WAV and AIFF readers under
// their common file extensions.
func DefaultRegistry() *waveform.Registry {
	reg := waveform.NewRegistry()
	reg.Register("wav", waveform.KindWAV, wav.Opener{})
	reg.Register("wave", waveform.KindWAV, wav.Opener{})
	reg.Register("aiff", waveform.KindAIFF, aiff.Opener{})
	reg.Register("aif", waveform.KindAIFF, aiff.Opener{})
	reg.Register("aifc", waveform.KindAIFF, aiff.Opener{})
	return reg
}

// OpenerFor returns the container reader for kind.
func OpenerFor(kind waveform.ContainerKind) waveform.Opener {
	if kind == waveform.KindAIFF {
		return aiff.Opener{}
	}
	return wav.Opener{}
}

// NewDecoder returns a closed decoder for path, choosing the container
// reader by file extension.
func NewDecoder(path string, opts waveform.Options) (*waveform.Decoder, error) {
	return DefaultRegistry().NewDecoder(path, opts)
}

// DecodeFile is a high-level convenience function that decodes a whole
// file into one point sequence per channel.
//
// The container reader is picked from the file extension. opts.BlockSize
// controls how many frames are read from disk at a time; the result is
// the same for any block size when opts.Decimation is 1.
//
// Example:
//
//	channels, err := wavpoints.DecodeFile("audio.wav", waveform.Options{MaxWidth: 800})
//	if err != nil {
//	    panic(err)
//	}
//	fmt.Println(len(channels[0]))
func DecodeFile(path string, opts waveform.Options) ([][]waveform.Point, error) {
	f, err := DefaultRegistry().ForPath(path)
	if err != nil {
		return nil, err
	}
	opts.Kind = f.Kind
	return waveform.Collect(path, f.Opener, opts)
}
