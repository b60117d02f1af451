package output

// ErrorResponse is the standard JSON error format
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
	Hint    string `json:"hint,omitempty"` // Remediation hint (suggested fix command)
}

// SuccessResponse is a simple success indicator
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Path    string `json:"path,omitempty"`
}

// NewSuccess creates a success response
func NewSuccess(msg string) SuccessResponse {
	return SuccessResponse{Success: true, Message: msg}
}

// ProductResponse is the JSON form of a catalog product.
type ProductResponse struct {
	Position    int    `json:"position"` // 1-based, as shown in the list
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// CatalogResponse is the output of `shelf list --json`.
type CatalogResponse struct {
	Source   string            `json:"source"` // file path or "builtin"
	Count    int               `json:"count"`
	Products []ProductResponse `json:"products"`
}

// FrameResponse describes one composed frame for `shelf render --json`.
type FrameResponse struct {
	Width       int              `json:"width"`
	Height      int              `json:"height"`
	Orientation string           `json:"orientation"`
	Mode        string           `json:"mode"`
	Panes       []string         `json:"panes"`
	BackVisible bool             `json:"back_visible"`
	Selected    *ProductResponse `json:"selected,omitempty"`
	Text        string           `json:"text"`
	Diff        *DiffResult      `json:"diff,omitempty"`
}

// VersionResponse is the output of `shelf version --json`.
type VersionResponse struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}
