package models

// CredentialRecord is one stored account entry. Only Username and Password
// are encrypted; the remaining fields are plain metadata.
type CredentialRecord struct {
	AccountLabel string      `json:"accountLabel"`
	AccountID    string      `json:"accountId"`
	Username     SealedValue `json:"username"`
	Password     SealedValue `json:"password"`
	ContainerID  string      `json:"containerId,omitempty"`
}

// HasPassword reports whether the record carries an encrypted password.
func (r CredentialRecord) HasPassword() bool {
	return !r.Password.IsEmpty()
}

// PlainCredential is the editor-side view of a record: what the user types
// when adding or updating an entry, and what reveal returns.
type PlainCredential struct {
	AccountLabel string `json:"accountLabel"`
	AccountID    string `json:"accountId"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	ContainerID  string `json:"containerId,omitempty"`
}
