package session

// Package session holds the floating session handed over by a backgrounded
// live stream and the background-playback flag. Writers go through Manager's
// explicit API; readers subscribe with AddListener.
