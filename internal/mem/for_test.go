package mem

// WordsDump exposes page layout for testing.
type WordsDump struct {
	Bases []uint
	Sizes []uint
	Pages [][]int64
}

// Dump memory layout for testing.
func (m *Words) Dump() (d WordsDump) {
	d.Bases = m.bases
	d.Sizes = m.sizes
	d.Pages = m.pages
	return d
}
