package models

// Asset is a CMS-managed media file with its URL already made absolute.
type Asset struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

// Sermon is one published teaching.
type Sermon struct {
	Name              string   `json:"name" yaml:"name"`
	SermonDate        string   `json:"sermonDate" yaml:"sermonDate"`
	YouTubeLink       string   `json:"youTubeLink,omitempty" yaml:"youTubeLink,omitempty"`
	ThumbnailImage    *Asset   `json:"thumbnailImage,omitempty" yaml:"thumbnailImage,omitempty"`
	SermonDescription string   `json:"sermonDescription,omitempty" yaml:"sermonDescription,omitempty"`
	SermonTags        []string `json:"sermonTags" yaml:"sermonTags"`
}

// Music is one released track.
type Music struct {
	Name            string   `json:"name" yaml:"name"`
	Artists         []string `json:"artists" yaml:"artists"`
	ReleaseDate     string   `json:"releaseDate" yaml:"releaseDate"`
	SongLength      int      `json:"songLength,omitempty" yaml:"songLength,omitempty"`
	RecordType      string   `json:"recordType,omitempty" yaml:"recordType,omitempty"`
	PrimaryColor    string   `json:"primaryColor,omitempty" yaml:"primaryColor,omitempty"`
	MusicThumbnail  *Asset   `json:"musicThumbnail,omitempty" yaml:"musicThumbnail,omitempty"`
	HasMusicVideo   bool     `json:"hasMusicVideo" yaml:"hasMusicVideo"`
	SpotifyLink     string   `json:"spotifyLink,omitempty" yaml:"spotifyLink,omitempty"`
	AppleMusicLink  string   `json:"appleMusicLink,omitempty" yaml:"appleMusicLink,omitempty"`
	AmazonMusicLink string   `json:"amazonMusicLink,omitempty" yaml:"amazonMusicLink,omitempty"`
	DeezerLink      string   `json:"deezerLink,omitempty" yaml:"deezerLink,omitempty"`
	YouTubeLink     string   `json:"youTubeLink,omitempty" yaml:"youTubeLink,omitempty"`
}

// PlatformLink is one outbound streaming link of a song.
type PlatformLink struct {
	Platform string
	URL      string
}

// PlatformLinks returns the non-empty streaming links in display order.
func (m Music) PlatformLinks() []PlatformLink {
	candidates := []PlatformLink{
		{Platform: "Spotify", URL: m.SpotifyLink},
		{Platform: "Apple Music", URL: m.AppleMusicLink},
		{Platform: "Amazon Music", URL: m.AmazonMusicLink},
		{Platform: "Deezer", URL: m.DeezerLink},
		{Platform: "YouTube", URL: m.YouTubeLink},
	}
	links := make([]PlatformLink, 0, len(candidates))
	for _, c := range candidates {
		if c.URL != "" {
			links = append(links, c)
		}
	}
	return links
}

// Ministry is a static card on the ministry page.
type Ministry struct {
	Title       string
	Description string
	Link        string
}
