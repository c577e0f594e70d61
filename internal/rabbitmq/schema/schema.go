package schema

import (
	"github.com/goccy/go-json"
)

// PasswordResetRequested carries a plaintext secret to the mailer. It is
// published as a transient message and never stored by the application.
type PasswordResetRequested struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
}

func (m *PasswordResetRequested) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *PasswordResetRequested) Unmarshal(data []byte) error {
	return json.Unmarshal(data, m)
}
