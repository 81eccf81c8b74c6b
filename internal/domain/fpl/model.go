package fpl

// BootstrapDocument is the season reference snapshot: clubs, players and gameweeks.
type BootstrapDocument struct {
	Clubs    []BootstrapClub
	Elements []BootstrapElement
	Events   []BootstrapEvent
}

type BootstrapClub struct {
	ID   int64
	Name string
}

// BootstrapElement is a player row. NowCost is in tenths of a million and
// Team is the club id.
type BootstrapElement struct {
	ID      int64
	WebName string
	NowCost int64
	Team    int64
}

type BootstrapEvent struct {
	ID        int64
	IsCurrent bool
}

// EntryDocument describes one manager's fantasy entry.
type EntryDocument struct {
	ID              int64
	Name            string
	PlayerFirstName string
	PlayerLastName  string
	CurrentEvent    int64
}

// PicksDocument lists an entry's selected players for one gameweek, in squad order.
type PicksDocument struct {
	Picks []Pick
}

type Pick struct {
	Element       int64
	Position      int
	Multiplier    int
	IsCaptain     bool
	IsViceCaptain bool
}
