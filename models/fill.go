package models

// Destination identifies where an autofill action is presented: the sign-in
// page for one account, optionally scoped to a browser container.
type Destination struct {
	AccountID   string `json:"accountId"`
	URL         string `json:"url"`
	ContainerID string `json:"containerId,omitempty"`
}

// FillData is the decrypted material handed to a fill surface.
type FillData struct {
	AccountID string `json:"accountIdentifier"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// FillRequest is the body posted to a fill agent.
type FillRequest struct {
	Destination Destination `json:"destination"`
	Data        FillData    `json:"data"`
}

// AgentStatus is the fill agent's answer to a liveness ping.
type AgentStatus struct {
	Status string `json:"status"`
}

// AgentStatusAlive is the status reported by a live fill agent.
const AgentStatusAlive = "alive"
