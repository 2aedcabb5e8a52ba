package entity

import "time"

// Channel discriminates which handler the subject/body pair was authored for.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelChat  Channel = "chat"
)

// Language of a generated draft.
type Language string

const (
	LanguageTurkish Language = "tr"
	LanguageEnglish Language = "en"
)

// GeneratedMessage is the AI-drafted outreach text for exactly one customer.
// Regeneration replaces it wholesale; there is never a merge.
type GeneratedMessage struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`

	// ChatBody is the chat-formatted variant; its line breaks are literal
	// newlines meant to be rendered as separate message bubbles.
	ChatBody string `json:"chat_body,omitempty"`

	Channel     Channel   `json:"channel"`
	Language    Language  `json:"language"`
	GeneratedAt time.Time `json:"generated_at"`
}

// FallbackMessage is stored when draft generation fails, so the operator
// workflow keeps moving instead of halting on one bad lead.
func FallbackMessage(lang Language) GeneratedMessage {
	return GeneratedMessage{
		Subject:     "Follow up",
		Body:        "Error generating draft.",
		Channel:     ChannelEmail,
		Language:    lang,
		GeneratedAt: time.Now(),
	}
}

// ArchiveEntry is a completed lead: the customer plus the draft it was
// contacted with. Entries are read-only except for explicit removal.
type ArchiveEntry struct {
	Customer   Customer         `json:"customer"`
	Message    GeneratedMessage `json:"message"`
	ArchivedAt time.Time        `json:"archived_at"`
}

// GenerationContext parameterizes every future draft-generation call.
// Mutations are immediate and affect only subsequent generations.
type GenerationContext struct {
	SenderOrg     string `json:"sender_org"`
	EventName     string `json:"event_name"`
	EventLocation string `json:"event_location"`
}
