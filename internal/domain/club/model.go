package club

// Club is a real Premier League side as listed in the bootstrap snapshot.
type Club struct {
	ID   int64
	Name string
}
