package editor

import "time"

// NoticeDuration is how long a client should keep a notice on screen.
const NoticeDuration = 4 * time.Second

// NoticeKind classifies a notice for display.
type NoticeKind string

const (
	KindSuccess NoticeKind = "success"
	KindError   NoticeKind = "error"
)

// Notice is a short, transient message for the operator. It is
// informational only and never part of the stored data.
type Notice struct {
	Text string
	Kind NoticeKind
}

func success(text string) Notice { return Notice{Text: text, Kind: KindSuccess} }

func failure(text string) Notice { return Notice{Text: text, Kind: KindError} }
