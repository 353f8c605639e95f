package display

import "github.com/chatterhq/chatter-backend/internal/present"

// Response is the client-facing shape of a display preference.
type Response struct {
	ID           string `json:"_id"`
	Author       string `json:"author"`
	DisplayType  string `json:"displayType"`
	DateModified string `json:"dateModified"`
}

// Present converts a stored display (owner resolved) into a Response.
func Present(d *Display) Response {
	return Response{
		ID:           d.ID.String(),
		Author:       d.Author.Username,
		DisplayType:  d.DisplayType,
		DateModified: present.FormatDate(d.DateModified),
	}
}

// PresentAll converts a list of stored displays.
func PresentAll(list []Display) []Response {
	out := make([]Response, 0, len(list))
	for i := range list {
		out = append(out, Present(&list[i]))
	}
	return out
}
