package markupconfig

const (
	isoCodeListURL = "http://www.loc.gov/standards/iso639-2/php/code_list.php"

	langDefaultNote = "If multi-language support is installed, this will default to the `name` of the current user language."
)

// YouTube lists the embed parameters of the YouTube player.
var YouTube = Provider{
	Namespace: NamespaceYouTube,
	Label:     "YouTube Options",
	Icon:      "youtube",
	InfoURL:   "https://developers.google.com/youtube/player_parameters#Parameters",
	Options: []OptionEntry{
		{Key: "noCookie", Descriptor: Descriptor{
			Label:       "Enable privacy-enhanced mode?",
			Description: "When enabled, YouTube won't store information about visitors on your website unless they play the video.",
		}},
		{Key: "autoplay", Descriptor: Descriptor{
			Label:       "Autoplay",
			Description: "Specifies whether the initial video will automatically start to play when the player loads.",
		}},
		{Key: "cc_lang_pref", Descriptor: Descriptor{
			Type:        FieldText,
			Label:       "Closed Captions Language Preference",
			Description: "Specifies the default language that the player will use to display captions. Set the value to an [ISO 639-1](" + isoCodeListURL + ") two-letter language code.",
			Notes: "If you use this parameter and also set the `cc_load_policy` parameter to 1, then the player will show captions in the specified language when the player loads. " +
				"If you do not also set the `cc_load_policy` parameter, then captions will not display by default, but will display in the specified language if the user opts to turn captions on.\n" +
				langDefaultNote,
			Validate: "omitempty,language",
		}},
		{Key: "cc_load_policy", Descriptor: Descriptor{
			Label:       "Closed Captions Load Policy",
			Description: "Enabling this causes closed captions to be shown by default, even if the user has turned captions off. The default behavior is based on user preference.",
		}},
		{Key: "color", Descriptor: Descriptor{
			Label:       "Color",
			Description: "Specifies the color that will be used in the player's video progress bar to highlight the amount of the video that the viewer has already seen. By default, the player uses the color red in the video progress bar. See the [YouTube API blog](http://youtube-eng.blogspot.com/2011/08/coming-soon-dark-player-for-embeds_5.html) for more information about color options.",
			Notes:       "Setting the color parameter to white will disable the `modestbranding` option.",
			Options: []Option{
				{Value: "", Label: ""},
				{Value: "red", Label: "Red"},
				{Value: "white", Label: "White"},
			},
		}},
		{Key: "controls", Descriptor: Descriptor{
			Label:       "Controls",
			Description: "Indicates whether the video player controls are displayed.",
			Notes:       "Off - Player controls do not display in the player.\nOn (default) - Player controls display in the player.",
		}},
		{Key: "disablekb", Descriptor: Descriptor{
			Label:       "Disable Keyboard Controls",
			Description: "Disabling causes the player to not respond to keyboard controls.",
		}},
		{Key: "fs", Descriptor: Descriptor{
			Label:       "Fullscreen",
			Description: "Display the fullscreen button in the player.",
		}},
		{Key: "hl", Descriptor: Descriptor{
			Type:        FieldText,
			Label:       "Interface Language",
			Description: "Sets the player's interface language. The value is an [ISO 639-1](" + isoCodeListURL + ") two-letter language code or a fully specified locale. For example, fr and fr-ca are both valid values. Other language input codes, such as IETF language tags (BCP 47) might also be handled properly.",
			Notes:       langDefaultNote,
			Validate:    "omitempty,language",
		}},
		{Key: "iv_load_policy", Descriptor: Descriptor{
			Label: "Annotations Behaviour",
			Options: []Option{
				{Value: "", Label: ""},
				{Value: "1", Label: "Show annotations"},
				{Value: "3", Label: "Do not show annotations"},
			},
		}},
		{Key: "modestbranding", Descriptor: Descriptor{
			Label:       "Modest Branding",
			Description: "Lets you use a YouTube player that does not show a YouTube logo. Enable to prevent the YouTube logo from displaying in the control bar.",
			Notes:       "When enabled, a small YouTube text label will still display in the upper-right corner of a paused video when the user's mouse pointer hovers over the player",
		}},
		{Key: "playsinline", Descriptor: Descriptor{
			Label:       "Play inline",
			Description: "Controls whether videos play inline or fullscreen in an HTML5 player on iOS.",
		}},
		{Key: "rel", Descriptor: Descriptor{
			Label:       "Related Videos",
			Description: "If disabled, related videos will come from the same channel as the video that was just played.",
			Options: []Option{
				{Value: "", Label: ""},
				{Value: "0", Label: "Show from the same channel"},
				{Value: "1", Label: "Show from any channel"},
			},
		}},
	},
}

// Vimeo lists the oEmbed arguments of the Vimeo player.
var Vimeo = Provider{
	Namespace: NamespaceVimeo,
	Label:     "Vimeo Options",
	Icon:      "vimeo",
	InfoURL:   "https://developer.vimeo.com/api/oembed/videos#table-2",
	Options: []OptionEntry{
		{Key: "autopause", Descriptor: Descriptor{
			Label:       "Autopause",
			Description: "Whether to pause the current video when another Vimeo video on the same page starts to play. Disable to permit simultaneous playback of all the videos on the page.",
		}},
		{Key: "autoplay", Descriptor: Descriptor{
			Label:       "Autoplay",
			Description: "Whether to start playback of the video automatically. This feature might not work on all devices.",
		}},
		{Key: "byline", Descriptor: Descriptor{
			Label:       "Byline",
			Description: "Whether to display the video owner's name.",
		}},
		{Key: "color", Descriptor: Descriptor{
			Type:        FieldText,
			Label:       "Color",
			Description: "The hexadecimal color value of the playback controls, which is normally 00ADEF. The embed settings of the video might override this value.",
			Placeholder: "00ADEF",
			Validate:    "omitempty,hexadecimal,len=6",
		}},
		{Key: "dnt", Descriptor: Descriptor{
			Label:       "Do Not Track",
			Description: "Whether to prevent the player from tracking session data, including cookies.",
			Notes:       "Keep in mind that enabling this also blocks video stats.",
		}},
		{Key: "fun", Descriptor: Descriptor{
			Label:       "Informal error messages",
			Description: "Whether to disable informal error messages in the player, such as *Oops*.",
		}},
		{Key: "loop", Descriptor: Descriptor{
			Label:       "Loop",
			Description: "Whether to restart the video automatically after reaching the end.",
		}},
		{Key: "muted", Descriptor: Descriptor{
			Label:       "Muted",
			Description: "Whether the video is muted upon loading. Enabling this is required for the autoplay behavior in some browsers.",
		}},
		{Key: "playsinline", Descriptor: Descriptor{
			Label:       "Play inline",
			Description: "Whether the video plays inline on supported mobile devices. Disable to force the device to play the video in fullscreen mode instead.",
		}},
		{Key: "portrait", Descriptor: Descriptor{
			Label:       "Portrait",
			Description: "Whether to display the video owner's portrait.",
		}},
		{Key: "responsive", Descriptor: Descriptor{
			Label:       "Responsive",
			Description: "Whether to return a *responsive embed code*, or one that provides intelligent adjustments based on viewing conditions.",
		}},
		{Key: "texttrack", Descriptor: Descriptor{
			Type:        FieldText,
			Label:       "Text track",
			Description: "The text track to display with the video. Specify the text track by its language code (en), the language code and locale (en-US), or the language code and kind (en.captions).",
			Notes:       "For this argument to work, the video must already have a text track of the given type.\n" + langDefaultNote,
			Validate:    "omitempty,texttrack",
		}},
		{Key: "title", Descriptor: Descriptor{
			Label:       "Title",
			Description: "Whether the player displays the title overlay.",
		}},
		{Key: "transparent", Descriptor: Descriptor{
			Label:       "Transparent",
			Description: "Whether the responsive player and transparent background are enabled.",
		}},
	},
}

// Providers returns the provider tables in form order.
func Providers() []Provider {
	return []Provider{YouTube, Vimeo}
}
