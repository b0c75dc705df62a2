package domain

// Settings configures delivery to a single Telegram chat
type Settings struct {
	BotToken         string           `json:"bot_token" koanf:"bot_token"`
	ChatID           string           `json:"chat_id" koanf:"chat_id"`
	TopicID          *int             `json:"topic_id,omitempty" koanf:"topic_id"`
	SendSilently     bool             `json:"send_silently" koanf:"send_silently"`
	SendMetadataLink bool             `json:"send_metadata_link" koanf:"send_metadata_link"`
	MetadataLinkType MetadataLinkType `json:"metadata_link_type" koanf:"metadata_link_type"`
}

// Default returns settings with metadata links enabled and pointing at IMDb
func Default() Settings {
	return Settings{
		SendMetadataLink: true,
		MetadataLinkType: MetadataLinkTypeIMDb,
	}
}

// Masked returns a copy safe to expose outside the process.
func (s Settings) Masked() Settings {
	if len(s.BotToken) > 4 {
		s.BotToken = "****" + s.BotToken[len(s.BotToken)-4:]
	} else if s.BotToken != "" {
		s.BotToken = "****"
	}
	return s
}

// Normalize replaces a link type given in any casing with its canonical value.
// Unknown values are left for validation to report.
func (s *Settings) Normalize() {
	if linkType, err := ParseMetadataLinkType(string(s.MetadataLinkType)); err == nil {
		s.MetadataLinkType = linkType
	}
}
