package manifest

// Manifest holds the fields of an extension's package.json that the client
// consumes. Contribution points and scripts are intentionally not modeled.
type Manifest struct {
	Name             string            `json:"name"`
	DisplayName      string            `json:"displayName,omitempty"`
	Description      string            `json:"description,omitempty"`
	Version          string            `json:"version"`
	Publisher        string            `json:"publisher"`
	License          string            `json:"license,omitempty"`
	Engines          map[string]string `json:"engines"`
	Categories       []string          `json:"categories,omitempty"`
	Keywords         []string          `json:"keywords,omitempty"`
	Main             string            `json:"main,omitempty"`
	Browser          string            `json:"browser,omitempty"`
	Icon             string            `json:"icon,omitempty"`
	ExtensionKind    []string          `json:"extensionKind,omitempty"`
	ActivationEvents []string          `json:"activationEvents,omitempty"`
}

// ID returns the canonical "publisher.name" extension identifier.
func (m *Manifest) ID() string {
	return m.Publisher + "." + m.Name
}

// EngineRange returns the declared vscode engine range, or "" when absent.
func (m *Manifest) EngineRange() string {
	return m.Engines["vscode"]
}
