package todo

// Entry is one item on the list.
type Entry struct {
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Editing     bool   `json:"editing"`
}
