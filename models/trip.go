package models

// Trip represents a planned trip and its membership.
type Trip struct {
	TripID      string       `json:"tripid" bson:"tripid"`
	OwnerID     string       `json:"owner_id" bson:"owner_id"`
	Name        string       `json:"name" bson:"name"`
	Description string       `json:"description" bson:"description"`
	Destination string       `json:"destination,omitempty" bson:"destination,omitempty"`
	StartDate   string       `json:"start_date" bson:"start_date"`
	EndDate     string       `json:"end_date" bson:"end_date"`
	Status      string       `json:"status" bson:"status"` // Draft/Confirmed
	Published   bool         `json:"published" bson:"published"`
	ForkedFrom  *string      `json:"forked_from,omitempty" bson:"forked_from,omitempty"`
	InviteCode  string       `json:"invite_code,omitempty" bson:"invite_code,omitempty"`
	Members     []TripMember `json:"members" bson:"members"`
	Deleted     bool         `json:"-" bson:"deleted,omitempty"` // Internal use only
	CreatedAt   int64        `json:"createdAt" bson:"createdAt"`
}

type TripMember struct {
	UserID   string `json:"user_id" bson:"user_id"`
	Username string `json:"username,omitempty" bson:"username,omitempty"`
	Role     string `json:"role" bson:"role"` // owner, editor
	JoinedAt int64  `json:"joinedAt" bson:"joinedAt"`
}

// HasMember reports whether userID is the owner or a member of the trip.
func (t *Trip) HasMember(userID string) bool {
	if t.OwnerID == userID {
		return true
	}
	for _, m := range t.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
