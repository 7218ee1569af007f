package domain

// NoticeLevel classifies a user-facing notification
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeSuccess
	NoticeWarning
	NoticeError
)

// Notice is a message shown to the user after an action completes
type Notice struct {
	Level   NoticeLevel
	Message string
}

// User-facing messages for list view actions
const (
	MsgLinkCopied    = "Link copied to clipboard!"
	MsgCopyFailed    = "Failed to copy link."
	MsgFileDeleted   = "File deleted!"
	MsgDeleteFailed  = "Failed to delete file"
	MsgConfirmDelete = "Do you really want to delete this file?"
)
