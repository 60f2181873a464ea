package database

// Project groups request definitions and one editor content record.
type Project struct {
	ID   int64
	Name string
}

// Request is a stored HTTP-like request definition.
type Request struct {
	ID             int64
	UID            string
	ProjectID      int64
	Name           string
	Body           string
	URL            string
	AdditionalData string
	Headers        string
}

// EditorContent is the free text saved for a project.
type EditorContent struct {
	ID        int64
	ProjectID int64
	Content   string
}
