// Package decoder turns an encoded byte buffer plus a format hint into
// decoded PCM. It is the only component here that shells out to an
// external process; everything downstream treats it as a synchronous,
// CPU-bound capability.
package decoder

import "github.com/fans963/audioengine/types"

// Decoder decodes an encoded audio blob into PCM samples and a sample rate.
// format is a case-insensitive extension-style hint ("wav", "mp3", "flac",
// "ogg", ...).
type Decoder interface {
	Decode(format string, data []byte) (types.Audio, error)
}
