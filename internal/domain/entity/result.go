package entity

// Result is the discriminated outcome of save, delete and status calls
type Result struct {
	OK    bool   `json:"ok"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

// NewResult builds a Result from a usecase return pair
func NewResult(id string, err error) Result {
	if err != nil {
		return Result{OK: false, Error: err.Error()}
	}
	return Result{OK: true, ID: id}
}
