package types

// ServerInfo identifies the running server
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// DivisionStats counts divide calls served since startup
type DivisionStats struct {
	Served    uint64 `json:"served"`    // All divide calls, including failures
	Succeeded uint64 `json:"succeeded"` // Calls that returned a Success outcome
	Failed    uint64 `json:"failed"`    // Calls that returned a Failure outcome
}

// StatusResponse is returned by the status tool
type StatusResponse struct {
	Status    string        `json:"status"`
	Server    ServerInfo    `json:"server"`
	Divisions DivisionStats `json:"divisions"`
}
