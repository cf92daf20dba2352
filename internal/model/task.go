package model

type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Stats is derived from the collection on every read, never stored.
type Stats struct {
	Completed  int `json:"completed"`
	Incomplete int `json:"incomplete"`
	Total      int `json:"total"`
}
