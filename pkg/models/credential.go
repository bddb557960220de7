package models

// SaveCredentialRequest registers a data-source credential for an owner.
type SaveCredentialRequest struct {
	OwnerID string            `json:"owner_id"`
	Ref     string            `json:"ref"`
	Source  string            `json:"source"`
	DSN     string            `json:"dsn"`
	Params  map[string]string `json:"params,omitempty"`
}

// CredentialInfo is the listing view. The DSN never leaves the server.
type CredentialInfo struct {
	Ref    string `json:"ref"`
	Source string `json:"source"`
}
