package internal

// Wipe overwrites the contents of the provided byte slice with zeros. Used to
// drop secret material (prompt buffers) as soon as it has been copied out.
// Best effort only: the Go runtime may have made other copies.
//
// If the slice is nil, Wipe does nothing.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
