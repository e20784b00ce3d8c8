// SPDX-License-Identifier: EPL-2.0

package mixdown

import (
	"github.com/sceneforge/mixdown/audio"
	"github.com/sceneforge/mixdown/formats/aiff"
	"github.com/sceneforge/mixdown/formats/mp3"
	"github.com/sceneforge/mixdown/formats/vorbis"
	"github.com/sceneforge/mixdown/formats/wav"
)

// DefaultDecoders returns a registry with every bundled format decoder
// registered under its usual file extension: "wav", "aiff" (also "aif"),
// "mp3" and "ogg".
func DefaultDecoders() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})

	return r
}
