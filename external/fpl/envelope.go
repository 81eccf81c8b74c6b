package fpl

import domainfpl "github.com/riskibarqy/fpl-house-rules/internal/domain/fpl"

type bootstrapEnvelope struct {
	Teams    []clubEnvelope    `json:"teams" validate:"required,dive"`
	Elements []elementEnvelope `json:"elements" validate:"required,dive"`
	Events   []eventEnvelope   `json:"events" validate:"dive"`
}

type clubEnvelope struct {
	ID   int64  `json:"id" validate:"required,gt=0"`
	Name string `json:"name" validate:"required"`
}

type elementEnvelope struct {
	ID      int64  `json:"id" validate:"required,gt=0"`
	WebName string `json:"web_name" validate:"required"`
	NowCost int64  `json:"now_cost" validate:"gte=0"`
	Team    int64  `json:"team" validate:"required,gt=0"`
}

type eventEnvelope struct {
	ID        int64 `json:"id" validate:"required,gt=0"`
	IsCurrent bool  `json:"is_current"`
}

// current_event is null before the first deadline of a season.
type entryEnvelope struct {
	ID              int64  `json:"id" validate:"required,gt=0"`
	Name            string `json:"name" validate:"required"`
	PlayerFirstName string `json:"player_first_name"`
	PlayerLastName  string `json:"player_last_name"`
	CurrentEvent    *int64 `json:"current_event"`
}

type picksEnvelope struct {
	Picks []pickEnvelope `json:"picks" validate:"required,dive"`
}

type pickEnvelope struct {
	Element       int64 `json:"element" validate:"required,gt=0"`
	Position      int   `json:"position"`
	Multiplier    int   `json:"multiplier"`
	IsCaptain     bool  `json:"is_captain"`
	IsViceCaptain bool  `json:"is_vice_captain"`
}

func (e bootstrapEnvelope) toDomain() domainfpl.BootstrapDocument {
	out := domainfpl.BootstrapDocument{
		Clubs:    make([]domainfpl.BootstrapClub, 0, len(e.Teams)),
		Elements: make([]domainfpl.BootstrapElement, 0, len(e.Elements)),
		Events:   make([]domainfpl.BootstrapEvent, 0, len(e.Events)),
	}
	for _, item := range e.Teams {
		out.Clubs = append(out.Clubs, domainfpl.BootstrapClub{ID: item.ID, Name: item.Name})
	}
	for _, item := range e.Elements {
		out.Elements = append(out.Elements, domainfpl.BootstrapElement{
			ID:      item.ID,
			WebName: item.WebName,
			NowCost: item.NowCost,
			Team:    item.Team,
		})
	}
	for _, item := range e.Events {
		out.Events = append(out.Events, domainfpl.BootstrapEvent{ID: item.ID, IsCurrent: item.IsCurrent})
	}
	return out
}

func (e entryEnvelope) toDomain() domainfpl.EntryDocument {
	out := domainfpl.EntryDocument{
		ID:              e.ID,
		Name:            e.Name,
		PlayerFirstName: e.PlayerFirstName,
		PlayerLastName:  e.PlayerLastName,
	}
	if e.CurrentEvent != nil {
		out.CurrentEvent = *e.CurrentEvent
	}
	return out
}

func (e picksEnvelope) toDomain() domainfpl.PicksDocument {
	out := domainfpl.PicksDocument{Picks: make([]domainfpl.Pick, 0, len(e.Picks))}
	for _, item := range e.Picks {
		out.Picks = append(out.Picks, domainfpl.Pick{
			Element:       item.Element,
			Position:      item.Position,
			Multiplier:    item.Multiplier,
			IsCaptain:     item.IsCaptain,
			IsViceCaptain: item.IsViceCaptain,
		})
	}
	return out
}
