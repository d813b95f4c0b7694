package domain

import "time"

type MsgId = int64

type Message struct {
	Id         MsgId          `json:"id"`
	Content    string         `json:"content"`
	SenderName string         `json:"senderName"`
	CreatedAt  time.Time      `json:"createdAt"`
	Images     []MessageImage `json:"messageImages"`
}

// MessageImage links a message to one attached image.
// Image is populated when fetching with enrichment.
type MessageImage struct {
	Id        int64   `json:"id"`
	MessageId MsgId   `json:"-"`
	ImageId   ImageId `json:"imageId"`
	Image     *Image  `json:"image"`
}

// MessageCreationData carries the raw, unvalidated creation request.
type MessageCreationData struct {
	SenderName string
	Content    string
	ImageIds   []ImageId
}
