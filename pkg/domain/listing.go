package domain

// Photo is a hosted image attached to a listing or a profile.
type Photo struct {
	URL string `json:"url"`
}

// Account is the public slice of a listing owner's profile.
type Account struct {
	Username string `json:"username"`
	Photo    *Photo `json:"photo,omitempty"`
}

// Owner is the user document embedded in a listing payload.
type Owner struct {
	ID      string  `json:"_id"`
	Account Account `json:"account"`
}

// Listing is a room offer as served by the marketplace API.
// Location carries [longitude, latitude], in that order.
type Listing struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int       `json:"price"`
	RatingValue float64   `json:"ratingValue"`
	Reviews     int       `json:"reviews"`
	Photos      []Photo   `json:"photos"`
	Location    []float64 `json:"location"`
	User        Owner     `json:"user"`
}

// Coordinate returns the listing position. The second return is false
// when the payload carried no usable location array.
func (l Listing) Coordinate() (Coordinate, bool) {
	if len(l.Location) < 2 {
		return Coordinate{}, false
	}
	return Coordinate{Longitude: l.Location[0], Latitude: l.Location[1]}, true
}

// FirstPhotoURL returns the cover photo URL, or "" when the listing has none.
func (l Listing) FirstPhotoURL() string {
	if len(l.Photos) == 0 {
		return ""
	}
	return l.Photos[0].URL
}
