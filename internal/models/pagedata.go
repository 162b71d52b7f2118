package models

import "github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/carousel"

type HomePageData struct {
	Sermons []Sermon
	Music   []Music
	Error   string
}

// SermonFilterForm echoes the submitted filter back into the page form.
type SermonFilterForm struct {
	Query        string
	From         string
	To           string
	SelectedTags map[string]bool
	Loads        int
}

type SermonsPageData struct {
	Sermons  []Sermon
	Total    int
	Matched  int
	Tags     []string
	Form     SermonFilterForm
	HasMore  bool
	NextLoad string
	Loading  bool
	Error    string
}

type MusicPageData struct {
	Music       []Music
	RecordTypes []string
	Query       string
	RecordType  string
	Error       string
}

type MinistryPageData struct {
	Ministries []Ministry
	Dots       []carousel.Dot
	State      carousel.State
}

type AboutPageData struct {
	LastUpdated string
}
