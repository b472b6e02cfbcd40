package model

// Movie mirrors the backend's película document.  The JSON tags follow the
// backend wire format, which the gateway passes through to browsers
// unchanged.
//
// Fields:
//  ID             – document identifier assigned by the backend.
//  Title          – display title, unique-ish but not enforced here.
//  Description    – synopsis shown on the detail page.
//  Genres         – one or more genre names.
//  DurationMin    – running time in minutes.
//  Classification – age rating (AA, A, B, B15, C, D).
//  Director       – director's name.
//  Actors         – main cast.
//  PosterURL      – optional poster image URL.
//  TrailerURL     – optional trailer URL.
//  Active         – false once the movie leaves the billboard.
type Movie struct {
	ID             string   `json:"id,omitempty"`
	Title          string   `json:"titulo"`
	Description    string   `json:"descripcion"`
	Genres         []string `json:"generos"`
	DurationMin    int      `json:"duracion"`
	Classification string   `json:"clasificacion"`
	Director       string   `json:"director"`
	Actors         []string `json:"actores"`
	PosterURL      string   `json:"posterUrl,omitempty"`
	TrailerURL     string   `json:"trailerUrl,omitempty"`
	Active         *bool    `json:"activa,omitempty"`
}
