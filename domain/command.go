package domain

// PublishCommand asks for a message to be broadcast on a channel.
type PublishCommand struct {
	SenderID  string    `validate:"required"`
	Channel   ChannelID `validate:"required"`
	Content   string
	Encrypted bool
}

// DirectCommand asks for a message to be sent to explicit recipients.
type DirectCommand struct {
	SenderID     string   `validate:"required"`
	RecipientIDs []string `validate:"required,min=1,dive,required"`
	Content      string
	Encrypted    bool
}
