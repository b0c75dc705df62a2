package service

import (
	"fmt"
	"strconv"

	eventDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/event/domain"
	settingsDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/settings/domain"
)

type metadataLink struct {
	id       func(series *eventDomain.Series) string
	template string
}

var metadataLinks = map[settingsDomain.MetadataLinkType]metadataLink{
	settingsDomain.MetadataLinkTypeIMDb: {
		id:       func(s *eventDomain.Series) string { return s.ImdbID },
		template: "https://www.imdb.com/title/%s",
	},
	settingsDomain.MetadataLinkTypeTVDb: {
		id:       func(s *eventDomain.Series) string { return strconv.Itoa(s.TvdbID) },
		template: "http://www.thetvdb.com/?tab=series&id=%s",
	},
	// Trakt is searched by TVDb id
	settingsDomain.MetadataLinkTypeTrakt: {
		id:       func(s *eventDomain.Series) string { return strconv.Itoa(s.TvdbID) },
		template: "http://trakt.tv/search/tvdb/%s?id_type=show",
	},
	settingsDomain.MetadataLinkTypeTVMaze: {
		id:       func(s *eventDomain.Series) string { return strconv.Itoa(s.TvMazeID) },
		template: "http://www.tvmaze.com/shows/%s/_",
	},
}

// FormatMessageWithLink wraps message as a markdown link to the series'
// metadata page when settings ask for one.
func FormatMessageWithLink(settings *settingsDomain.Settings, message string, series *eventDomain.Series) string {
	if !settings.SendMetadataLink || series == nil {
		return message
	}

	linkType, err := settingsDomain.ParseMetadataLinkType(string(settings.MetadataLinkType))
	if err != nil {
		return message
	}
	link, ok := metadataLinks[linkType]
	if !ok {
		return message
	}

	return fmt.Sprintf("[%s](%s)", message, fmt.Sprintf(link.template, link.id(series)))
}
