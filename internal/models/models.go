package models

import "time"

// Category classifies a board post. The zero value is not valid; use
// CategoryAll as the "no filter" sentinel.
type Category string

const (
	CategoryAll      Category = "all"
	CategoryTip      Category = "tip"
	CategoryFree     Category = "free"
	CategoryQuestion Category = "question"
)

// ParseCategory maps a raw string to a Category, falling back to CategoryAll
// for anything it does not recognize.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryTip, CategoryFree, CategoryQuestion:
		return Category(s)
	default:
		return CategoryAll
	}
}

// Valid reports whether the category is one of the post categories
// (not the "all" sentinel).
func (c Category) Valid() bool {
	switch c {
	case CategoryTip, CategoryFree, CategoryQuestion:
		return true
	}
	return false
}

// Post represents a board post as returned by the backend
type Post struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Category     Category  `json:"category"`
	NickName     string    `json:"nickName"`
	UserID       string    `json:"userId"`
	Email        string    `json:"email"`
	WritingTime  time.Time `json:"writingTime"`
	LikeCount    int       `json:"likeCount"`
	IsLiked      bool      `json:"isLiked"`
	CommentCount int       `json:"commentCount"`
	IsSaved      bool      `json:"isSaved"`
	ImageURLs    []string  `json:"imageUrls,omitempty"`
}

// Comment represents a single comment on a post. ParentID is nil for a
// top-level comment and points at a top-level comment for a reply; nesting
// never goes deeper than one level.
type Comment struct {
	ID       int64     `json:"id"`
	BoardID  int64     `json:"boardId"`
	ParentID *int64    `json:"parentId,omitempty"`
	NickName string    `json:"nickName"`
	Email    string    `json:"email"`
	Content  string    `json:"content"`
	Time     time.Time `json:"time"`
}

// Place is a single nearby-search hit. DistanceM is derived client-side
// from the search origin and is not part of the provider response.
type Place struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone,omitempty"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	DistanceM float64 `json:"distanceM"`
}

// Review is a one-line review of a place
type Review struct {
	ID        int64  `json:"id"`
	PlaceID   string `json:"placeId"`
	PlaceName string `json:"placeName"`
	Review    string `json:"review"`
	UserID    string `json:"userId"`
	NickName  string `json:"nickName"`
}

// UserProfile holds the profile fields the backend exposes for a user
type UserProfile struct {
	ID       int64  `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	NickName string `json:"nickName"`
	Email    string `json:"email"`
}

// LoginRequest is the credentials payload for POST /api/users/login
type LoginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token plus the profile fields the client
// persists locally.
type LoginResponse struct {
	Token    string `json:"token"`
	ID       int64  `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	NickName string `json:"nickName"`
	Email    string `json:"email"`
}

// SignupRequest is the payload for POST /api/users/signup
type SignupRequest struct {
	Name     string `json:"name"`
	UserID   string `json:"userId"`
	Password string `json:"password"`
	NickName string `json:"nickName"`
	Email    string `json:"email"`
}

// AvailabilityResponse is returned by the duplicate-check endpoints
type AvailabilityResponse struct {
	Available bool `json:"available"`
}

// VerificationCodeResponse is returned when an email verification code is
// issued; the code is compared client-side.
type VerificationCodeResponse struct {
	Code string `json:"code"`
}

// LikeResponse is returned by the like toggle and mirrored into the cached
// post without a full reload.
type LikeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

// SaveResponse is returned by the save toggle
type SaveResponse struct {
	Saved bool `json:"saved"`
}
