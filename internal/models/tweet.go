package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// BSON field names of the tweets collection.
const (
	FieldUser     = "tweet_user"
	FieldContent  = "tweet_content"
	FieldDate     = "tweet_date"
	FieldDateTime = "tweet_datetime"
)

const (
	// DisplayLayout is how the creation time is shown on the page.
	DisplayLayout = "January 2, 2006 | 03:04 PM UTC"
	// SortLayout is fixed width so string order matches time order.
	SortLayout = "2006-01-02T15:04:05.000000000Z"
)

// Tweet is immutable once stored. User and Content hold the escaped values.
type Tweet struct {
	ID       bson.ObjectID `json:"id"       bson:"_id,omitempty"`
	User     string        `json:"user"     bson:"tweet_user"`
	Content  string        `json:"content"  bson:"tweet_content"`
	Date     string        `json:"date"     bson:"tweet_date"`
	DateTime string        `json:"datetime" bson:"tweet_datetime,omitempty"`
}

// NewTweet builds a tweet whose two timestamps both come from now.
func NewTweet(user, content string, now time.Time) Tweet {
	now = now.UTC()
	return Tweet{
		User:     user,
		Content:  content,
		Date:     now.Format(DisplayLayout),
		DateTime: now.Format(SortLayout),
	}
}

// CreatedAt parses the sortable timestamp back into a time.
func (t Tweet) CreatedAt() (time.Time, bool) {
	if t.DateTime == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse(SortLayout, t.DateTime)
	if err != nil {
		return time.Time{}, false
	}
	return ts.UTC(), true
}
