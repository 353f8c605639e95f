package posts

import "github.com/chatterhq/chatter-backend/internal/present"

// Response is the client-facing shape of a post: IDs stringified, the
// author reference replaced by the username, dates formatted.
type Response struct {
	ID           string `json:"_id"`
	Author       string `json:"author"`
	Content      string `json:"content"`
	DateCreated  string `json:"dateCreated"`
	DateModified string `json:"dateModified"`
}

// Present converts a stored post (author resolved) into a Response.
func Present(post *Post) Response {
	return Response{
		ID:           post.ID.String(),
		Author:       post.Author.Username,
		Content:      post.Content,
		DateCreated:  present.FormatDate(post.DateCreated),
		DateModified: present.FormatDate(post.DateModified),
	}
}

// PresentAll converts a list of stored posts.
func PresentAll(list []Post) []Response {
	out := make([]Response, 0, len(list))
	for i := range list {
		out = append(out, Present(&list[i]))
	}
	return out
}
