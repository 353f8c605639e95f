package incognito

// Response is the client-facing shape of an incognito session: just the
// session ID and the owner resolved to a username.
type Response struct {
	ID   string `json:"_id"`
	User string `json:"userId"`
}

// Present converts a stored session (owner resolved) into a Response.
func Present(in *Incognito) Response {
	return Response{
		ID:   in.ID.String(),
		User: in.User.Username,
	}
}

// PresentAll converts a list of stored sessions.
func PresentAll(list []Incognito) []Response {
	out := make([]Response, 0, len(list))
	for i := range list {
		out = append(out, Present(&list[i]))
	}
	return out
}
