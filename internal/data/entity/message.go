package entity

// ReplySeparator is inserted between a message and each reply appended to it
const ReplySeparator = "\n\nReply: "

type Message struct {
	ID        string `db:"id"`
	Sender    string `db:"sender"`
	Content   string `db:"content"`
	Timestamp string `db:"timestamp"`
	IsRead    bool   `db:"is_read"`
}
