/*
Package server implements msgpack IPC for typeahead suggestion services.

The server package provides a minimal interface for prefix suggestions using msgpack serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports suggestion requests, candidate inventory reads, and health checks.
Messages are processed synchronously with timing info included in responses.

# IPC

The server operates on a request response model where clients send structured messages via stdin and receive responses through stdout.
Each message carries an ID field, a command, and other fields based on the operation type.

Suggestion requests use this structure:

	{"id": "req_001", "cmd": "complete", "q": "au", "l": 8}

The server responds with the matching entries in candidate order, each one
split into the part that matched the input and the rest:

	{"id": "req_001", "s": [{"p": "Au", "r": "di"}], "c": 1, "t": 145}

A blank query is not an error; it yields an empty suggestion list, mirroring
how an empty input box shows no suggestions. Candidate inventory reads return
every entry the server was started with:

	{"id": "req_002", "cmd": "candidates"}

Failed requests produce an error message with a code:

	{"id": "req_001", "e": "Input exceeds maximum length of 60 characters", "c": 400}

# Message Types

Request covers every client message. The command selects the operation:
"complete" for suggestions, "candidates" for the inventory, "health" for a
liveness probe. Response and Suggestion carry the match results, with the
prefix and remainder strings split exactly as a UI would render them, plus
timing data.

msgpack encoding has ~30 to 50% smaller message sizes compared to JSON.
binary format enables faster parsing and generation, less errors and reducing latency by ~40 to 70% in most cases.
*/
package server

// Request - client message, dispatched on the command field
type Request struct {
	ID      string `msgpack:"id"`
	Command string `msgpack:"cmd"`
	Input   string `msgpack:"q,omitempty"`
	Limit   int    `msgpack:"l,omitempty"`
}

// Suggestion - one matched entry, split at the match boundary
type Suggestion struct {
	Prefix    string `msgpack:"p"`
	Remainder string `msgpack:"r"`
}

// Response - suggestion response
type Response struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
}

// CandidatesResponse - full candidate inventory
type CandidatesResponse struct {
	ID         string   `msgpack:"id"`
	Candidates []string `msgpack:"w"`
	Count      int      `msgpack:"c"`
}

// StatusResponse - ready signal and health probe reply
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// RequestError holds basic error information for failed requests
type RequestError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
