package entity

import "time"

// Review is one user's rating of a product. A user may review a product at
// most once; the (product, user) pair is unique.
type Review struct {
	ID        int64
	ProductID int64
	UserID    int64
	Rating    int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Reviewer display fields, joined from users on read paths.
	ReviewerName     string
	ReviewerNickname string
}

// DisplayName returns the reviewer's nickname, falling back to their name.
func (r *Review) DisplayName() string {
	if r.ReviewerNickname != "" {
		return r.ReviewerNickname
	}

	return r.ReviewerName
}
