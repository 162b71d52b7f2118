package cms

import "encoding/json"

const (
	ContentTypeSermons = "sermons"
	ContentTypeMusic   = "music"
)

// Wire shapes of the Contentful Delivery API collection endpoint.

type link struct {
	Sys struct {
		Type     string `json:"type"`
		LinkType string `json:"linkType"`
		ID       string `json:"id"`
	} `json:"sys"`
}

type sys struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	ContentType *link  `json:"contentType,omitempty"`
}

type entry struct {
	Sys    sys             `json:"sys"`
	Fields json.RawMessage `json:"fields"`
}

type assetFields struct {
	Title string `json:"title"`
	File  struct {
		URL         string `json:"url"`
		FileName    string `json:"fileName"`
		ContentType string `json:"contentType"`
		Details     struct {
			Image struct {
				Width  int `json:"width"`
				Height int `json:"height"`
			} `json:"image"`
		} `json:"details"`
	} `json:"file"`
}

type asset struct {
	Sys    sys         `json:"sys"`
	Fields assetFields `json:"fields"`
}

type collection struct {
	Sys      sys     `json:"sys"`
	Total    int     `json:"total"`
	Skip     int     `json:"skip"`
	Limit    int     `json:"limit"`
	Items    []entry `json:"items"`
	Includes struct {
		Asset []asset `json:"Asset"`
	} `json:"includes"`
}

type apiError struct {
	Sys       sys    `json:"sys"`
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

type sermonFields struct {
	Name              string   `json:"name"`
	SermonDate        string   `json:"sermonDate"`
	YouTubeLink       string   `json:"youTubeLink"`
	ThumbnailImage    *link    `json:"thumbnailImage"`
	SermonDescription string   `json:"sermonDescription"`
	SermonTags        []string `json:"sermonTags"`
}

type musicFields struct {
	Name            string   `json:"name"`
	Artists         []string `json:"artists"`
	ReleaseDate     string   `json:"releaseDate"`
	SongLength      float64  `json:"songLength"`
	RecordType      string   `json:"recordType"`
	PrimaryColor    string   `json:"primaryColor"`
	MusicThumbnail  *link    `json:"musicThumbnail"`
	HasMusicVideo   bool     `json:"hasMusicVideo"`
	SpotifyLink     string   `json:"spotifyLink"`
	AppleMusicLink  string   `json:"appleMusicLink"`
	AmazonMusicLink string   `json:"amazonMusicLink"`
	DeezerLink      string   `json:"deezerLink"`
	YouTubeLink     string   `json:"youTubeLink"`
}
