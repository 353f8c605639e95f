package reaction

import "github.com/chatterhq/chatter-backend/internal/present"

// Response is the client-facing shape of a reaction.
type Response struct {
	ID           string `json:"_id"`
	User         string `json:"user"`
	PostID       string `json:"postId"`
	Symbol       string `json:"symbol"`
	DateCreated  string `json:"dateCreated"`
	DateModified string `json:"dateModified"`
}

// Present converts a stored reaction (owner resolved) into a Response.
func Present(r *Reaction) Response {
	return Response{
		ID:           r.ID.String(),
		User:         r.User.Username,
		PostID:       r.PostID.String(),
		Symbol:       r.Symbol,
		DateCreated:  present.FormatDate(r.DateCreated),
		DateModified: present.FormatDate(r.DateModified),
	}
}

// PresentAll converts a list of stored reactions.
func PresentAll(list []Reaction) []Response {
	out := make([]Response, 0, len(list))
	for i := range list {
		out = append(out, Present(&list[i]))
	}
	return out
}
