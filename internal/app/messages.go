package app

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Err error
}

// StateSavedMsg is sent once the layout has been written to disk
type StateSavedMsg struct {
	Path string
}

// ConfigChangedMsg is sent by the watcher when the config file changes
type ConfigChangedMsg struct{}
