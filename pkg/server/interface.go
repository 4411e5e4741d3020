/*
Package server implements msgpack IPC for the word frequency table.

The server provides a minimal interface for the grid frontend using
msgpack serialization over stdin/stdout. The table is loaded before the
server starts and never mutated, so every request is answered from the
same immutable data and requests carry no state between each other.

# IPC

The server operates on a request response model where clients send
structured messages via stdin and receive responses through stdout.
Each message contains an ID field, an op field, and the op's parameters.

Filter requests run the substring search the grid re-issues on every
keystroke or highlight-toggle change:

	{"id": "req_001", "op": "filter", "q": "る", "hl": true}

The server responds with the matching rows in rank order, the match
count, and the display label:

	{"id": "req_001", "rows": [{"r": 3, "w": "食べる", "k": false}], "c": 1, "m": "Showing 1 words", "t": 120}

Complete requests serve the search box suggestions:

	{"id": "req_002", "op": "complete", "q": "日", "l": 10}

Info requests report table statistics:

	{"id": "req_003", "op": "info"}

Error responses carry the request ID, a message and a code. A filter with
no matches is not an error; it returns an empty row set with count 0.
*/
package server

// Request is the envelope for every incoming message.
type Request struct {
	ID        string `msgpack:"id"`
	Op        string `msgpack:"op"`           // "filter", "complete", "info"
	Term      string `msgpack:"q,omitempty"`  // search term or prefix
	Highlight bool   `msgpack:"hl,omitempty"` // known-vocab highlight toggle
	Limit     int    `msgpack:"l,omitempty"`  // complete only
}

// Row is one table row on the wire.
type Row struct {
	Rank    int    `msgpack:"r"`
	Word    string `msgpack:"w"`
	Reading string `msgpack:"y,omitempty"`
	Known   bool   `msgpack:"k"`
}

// FilterResponse answers a filter request.
type FilterResponse struct {
	ID        string `msgpack:"id"`
	Rows      []Row  `msgpack:"rows"`
	Count     int    `msgpack:"c"`
	Label     string `msgpack:"m"`
	TimeTaken int64  `msgpack:"t"`
}

// CompleteResponse answers a complete request.
type CompleteResponse struct {
	ID        string `msgpack:"id"`
	Rows      []Row  `msgpack:"rows"`
	Count     int    `msgpack:"c"`
	TimeTaken int64  `msgpack:"t"`
}

// InfoResponse answers an info request.
type InfoResponse struct {
	ID         string `msgpack:"id"`
	Status     string `msgpack:"status"`
	TotalWords int    `msgpack:"total_words"`
	KnownWords int    `msgpack:"known_words"`
	Readings   bool   `msgpack:"readings"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
