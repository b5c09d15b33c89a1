package apifootball

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// envelope is the wrapper API-Football puts around every payload. errors is an
// empty array on success and an object or non-empty array describing problems
// otherwise.
type envelope struct {
	Errors   jsoniter.RawMessage `json:"errors"`
	Response jsoniter.RawMessage `json:"response"`
}

type teamEntry struct {
	Team  teamResponse   `json:"team"`
	Venue *venueResponse `json:"venue"`
}

type teamResponse struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Code     *string `json:"code"`
	Country  string  `json:"country"`
	Founded  *int    `json:"founded"`
	National bool    `json:"national"`
	Logo     string  `json:"logo"`
}

type venueResponse struct {
	ID       *int    `json:"id"`
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	Capacity *int    `json:"capacity"`
	Surface  *string `json:"surface"`
	Image    *string `json:"image"`
}
