package types

// DataType identifies what a Chart represents. It is part of the per-source
// cache key: a source has at most one chart per DataType.
type DataType string

const (
	TypeAudio            DataType = "audio"
	TypeSpectrum         DataType = "spectrum"
	TypeEnergy           DataType = "energy"
	TypeZeroCrossingRate DataType = "zeroCrossingRate"
)

// ParseDataType maps a serialized suffix (as used by toggle_visible names)
// back onto a DataType.
func ParseDataType(s string) (DataType, bool) {
	switch DataType(s) {
	case TypeAudio, TypeSpectrum, TypeEnergy, TypeZeroCrossingRate:
		return DataType(s), true
	default:
		return "", false
	}
}
