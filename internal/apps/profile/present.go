package profile

import "github.com/chatterhq/chatter-backend/internal/present"

// Response is the client-facing shape of a profile: IDs stringified,
// the owner reference replaced by the username, dates formatted.
type Response struct {
	ID           string `json:"_id"`
	User         string `json:"userId"`
	Handle       string `json:"handle"`
	Type         string `json:"type"`
	Bio          string `json:"bio"`
	DateCreated  string `json:"dateCreated"`
	DateModified string `json:"dateModified"`
}

// Present converts a stored profile (owner resolved) into a Response.
func Present(p *Profile) Response {
	return Response{
		ID:           p.ID.String(),
		User:         p.User.Username,
		Handle:       p.Handle,
		Type:         p.Type,
		Bio:          p.Bio,
		DateCreated:  present.FormatDate(p.DateCreated),
		DateModified: present.FormatDate(p.DateModified),
	}
}

// PresentAll converts a list of stored profiles.
func PresentAll(list []Profile) []Response {
	out := make([]Response, 0, len(list))
	for i := range list {
		out = append(out, Present(&list[i]))
	}
	return out
}
