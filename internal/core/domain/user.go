package domain

import "time"

// Document kinds written by the orchestration layer.
const (
	KindUser    = "user"
	KindMessage = "msg"
)

// Body keys shared between the orchestration layer and the built-in views.
const (
	FieldKind             = "kind"
	FieldEmail            = "email"
	FieldUsername         = "username"
	FieldVerified         = "verified"
	FieldMatchRequirement = "match_requirement"
	FieldHobbies          = "hobbies"
	FieldFrom             = "from"
	FieldTo               = "to"
	FieldContent          = "content"
	FieldTimestamp        = "timestamp"
)

// User is a typed projection of a user document.
type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Username         string    `json:"username"`
	Verified         bool      `json:"verified"`
	MatchRequirement float64   `json:"match_requirement"`
	Hobbies          []string  `json:"hobbies,omitempty"`
	Created          time.Time `json:"created"`
	Modified         time.Time `json:"modified"`
}

// UserFromDocument projects a user document.
func UserFromDocument(doc Document) User {
	req, _ := doc.Body.Number(FieldMatchRequirement)
	verified, _ := doc.Body[FieldVerified].(bool)
	return User{
		ID:               doc.ID,
		Email:            doc.Body.String(FieldEmail),
		Username:         doc.Body.String(FieldUsername),
		Verified:         verified,
		MatchRequirement: req,
		Hobbies:          doc.Body.Strings(FieldHobbies),
		Created:          doc.Created,
		Modified:         doc.Modified,
	}
}
