package gong

// Call is the call record returned by the calls API. It is produced only by
// the remote service and passed through verbatim; the client never constructs
// or mutates one.
type Call struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Scheduled string `json:"scheduled,omitempty"`
	Started   string `json:"started,omitempty"`
	Duration  int    `json:"duration,omitempty"`
	Direction string `json:"direction,omitempty"`
	System    string `json:"system,omitempty"`
	Scope     string `json:"scope,omitempty"`
	Media     string `json:"media,omitempty"`
	Language  string `json:"language,omitempty"`
	URL       string `json:"url,omitempty"`
}

// CallsResponse is the envelope of GET /calls.
type CallsResponse struct {
	Calls []Call `json:"calls"`
}

// TranscriptFilter selects the calls and detail level for the transcript
// endpoint.
type TranscriptFilter struct {
	CallIDs                    []string `json:"callIds"`
	IncludeEntities            bool     `json:"includeEntities"`
	IncludeInteractionsSummary bool     `json:"includeInteractionsSummary"`
	IncludeTrackers            bool     `json:"includeTrackers"`
}

// TranscriptRequest is the body of POST /calls/transcript.
type TranscriptRequest struct {
	Filter TranscriptFilter `json:"filter"`
}
