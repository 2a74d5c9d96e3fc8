package ports

// URLOpener defines the interface for showing a spot's picture outside the terminal
type URLOpener interface {
	// Open opens the URL with the system handler
	Open(rawURL string) error
}
