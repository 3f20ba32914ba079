package ports

// TextEditor lets the user write free text in their preferred editor
type TextEditor interface {
	// Edit opens the editor on initial and returns what the user saved
	Edit(initial string) (string, error)
}

// LinkOpener opens a URL outside the terminal
type LinkOpener interface {
	Open(rawURL string) error
}
