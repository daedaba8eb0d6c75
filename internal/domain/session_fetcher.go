package domain

import "context"

// SessionFetcher fetches event data from Sessionize (or a test double).
type SessionFetcher interface {
	Fetch(ctx context.Context, sessionizeID string) (SessionFetcherResponse, error)
}

// SessionFetcherResponse is the subset of the Sessionize All API response used to import speakers.
type SessionFetcherResponse struct {
	Sessions []SessionFetcherSession `json:"sessions"`
	Speakers []SessionFetcherSpeaker `json:"speakers"`
}

// SessionFetcherSession is a session in the Sessionize All response.
type SessionFetcherSession struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Speakers []string `json:"speakers"`
}

// SessionFetcherSpeaker is a speaker in the Sessionize All response.
type SessionFetcherSpeaker struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profilePicture"`
}
