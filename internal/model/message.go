package model

import "time"

// OutboundMessage is built from request input and handed to the SMTP sender.
// It is never persisted.
type OutboundMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

// DeliveryInfo describes a message the relay fully accepted.
type DeliveryInfo struct {
	Relay   string `json:"relay"`
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
}

// FetchedMessage is one unseen mailbox message with its raw header and text
// body parts, serialized straight into the response.
type FetchedMessage struct {
	SeqNum  uint32    `json:"seq_num"`
	From    string    `json:"from"`
	Subject string    `json:"subject"`
	Date    time.Time `json:"date"`
	Header  string    `json:"header"`
	Body    string    `json:"body"`
}
