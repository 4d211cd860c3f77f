package transform

// identity copies the tile through untouched. Used in both directions; the
// codec bypasses quantization for this method because the passthrough lacks
// the scaling semantics that would make quantization meaningful.
func identity(in, out []int32) {
	copy(out[:64], in[:64])
}
