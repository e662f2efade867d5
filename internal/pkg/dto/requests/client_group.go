package requests

type FindClientGroupEditView struct {
	ClientGroupID  string
	Tab            string
	RawQuery       string
	IncludeProfile bool
	IncludeAddress bool
}

// ChangeClientGroupTab carries the page location the tab switch happens on.
// An empty Path falls back to the client group edit page.
type ChangeClientGroupTab struct {
	ClientGroupID string `json:"-"`
	Tab           string `json:"tab" validate:"required,oneof=group-info clients billing"`
	Path          string `json:"path"`
	RawQuery      string `json:"query"`
}
